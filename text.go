package main

var (
	Name     = "Alan Tom"
	Email    = "alanwtom@outlook.com"
	GitHub   = "https://github.com/alanwtom"
	LinkedIn = "https://www.linkedin.com/in/alan-tom/"

	// IntroTexts are typed out under the name on the About tab
	IntroTexts = []string{
		"I'm a Computer Science junior at Syracuse University.",
	}
)

// aboutFragment is one independently revealed run of text. Quick fragments
// use the faster reveal timing of the opening paragraph.
type aboutFragment struct {
	Text      string
	Underline bool
	Quick     bool
}

var AboutParagraphs = [][]aboutFragment{
	{
		{Text: "I currently work as a Software Development Engineer Intern at ", Quick: true},
		{Text: "Micron Technology", Underline: true, Quick: true},
		{Text: ", building data-driven UIs and caching systems for semiconductor simulations.", Quick: true},
	},
	{
		{Text: "I also serve as the President of "},
		{Text: "Innovate Orange", Underline: true},
		{Text: ", where I lead a team of 20+ students to organize Syracuse University's largest hackathons and datathons."},
	},
	{
		{Text: "Previously, I conducted research at Syracuse University's "},
		{Text: "iSchool", Underline: true},
		{Text: " and "},
		{Text: "Data Lab", Underline: true},
		{Text: ", exploring the intersection of LLMs, human memory, and financial market analysis."},
	},
	{
		{Text: "Outside of work, I play video games, travel, and work out."},
	},
}

type Job struct {
	Company string
	Title   string
	Years   string
	Desc    string
	Color   string
}

var Experience = []Job{
	{
		Company: "Micron Technology",
		Title:   "Software Engineer Intern",
		Years:   "Feb. 2025 - Present",
		Desc:    "developing interactive C#/Unity simulations with 90% query reduction via custom caching and 60% UI overhead cut",
		Color:   "green",
	},
	{
		Company: "iSchool at Syracuse University",
		Title:   "NSF REU Researcher",
		Years:   "June 2025 - Aug. 2025",
		Desc:    "engineered financial sentiment pipeline using FinBERT/Llama 3.1, analyzing 5K+ posts to validate market volatility correlations",
		Color:   "yellow",
	},
	{
		Company: "Data Lab at Syracuse University",
		Title:   "Undergraduate Researcher",
		Years:   "Aug. 2024 - Feb. 2025",
		Desc:    "built Python evaluation pipeline for LLM memory interference testing, automating analysis of 300+ associations",
		Color:   "red",
	},
}

type TechItem struct {
	Name string
	Use  string
}

type Project struct {
	Title               string
	Description         string
	Tech                []string
	GitHub              string
	Demo                string
	DetailedDescription string
	TechStack           []TechItem
	Features            []string
}

var Projects = []Project{
	{
		Title:               "Bug Bot",
		Description:         "discord bot for career development with resume resources, real time job and event tracking, and learning material recommendations",
		Tech:                []string{"Python", "Discord.py", "GCP", "Nox"},
		GitHub:              "https://github.com/innovateorange/DiscordBot",
		Demo:                "https://discord.gg/cvqbKxPtHE",
		DetailedDescription: "student-focused career development bot with real-time job tracking, resume resources, and personalized learning recommendations",
		TechStack: []TechItem{
			{"Python", "core bot development"},
			{"Discord.py", "discord API integration"},
			{"GCP", "cloud hosting & storage"},
			{"Nox", "testing & automation"},
		},
		Features: []string{
			"real-time job tracking from multiple sources",
			"personalized resume feedback and templates",
			"curated learning material recommendations",
			"event notifications for career fairs and workshops",
		},
	},
	{
		Title:               "Flow",
		Description:         "sleek browser extension that helps users maintain focus by blocking distracting elements while browsing",
		Tech:                []string{"JavaScript", "Chrome Extension API", "HTML", "CSS"},
		GitHub:              "https://github.com/alanwtom/Flow",
		Demo:                "https://chromewebstore.google.com/detail/flow/odenofhkafaeedoohodgdndpeeadpndg",
		DetailedDescription: "browser extension that helps users maintain focus by intelligently blocking distracting elements while preserving core functionality",
		TechStack: []TechItem{
			{"JavaScript", "core extension logic"},
			{"Chrome Extension API", "browser integration"},
			{"HTML", "popup interface structure"},
			{"CSS", "styling & user interface"},
		},
		Features: []string{
			"intelligent content blocking algorithms",
			"customizable distraction filters",
			"minimal performance impact",
			"seamless user experience",
		},
	},
}

type Activity struct {
	Name    string
	Role    string
	Dates   string
	Bullets []string
}

var University = struct {
	School     string
	Degree     string
	Graduation string
	GPA        string
	Honors     string
	Coursework []string
	Activities []Activity
}{
	School:     "Syracuse University",
	Degree:     "Bachelor of Science in Computer Science",
	Graduation: "Expected May 2027",
	GPA:        "3.7/4.0",
	Honors:     "1870 Scholar (Full Tuition) & 4x Dean’s List",
	Coursework: []string{
		"Data Structures & Algorithms",
		"Computer Architecture",
		"Software Implementation",
		"Operating Systems",
		"Computer Networks",
		"Virtual Reality",
		"Linear Algebra",
		"Probability & Statistics",
	},
	Activities: []Activity{
		{
			Name:  "CuseHacks",
			Role:  "President",
			Dates: "Feb. 2024 – Present",
			Bullets: []string{
				"Led Syracuse University’s largest student-run hackathon with 200+ participants and a 15+ member organizing team",
				"Grew attendance 40% YoY through local outreach, social media campaigns, and university partnerships",
				"Secured $10,000+ in funding through industry partners and managing efforts across logistics, fundraising, and marketing",
			},
		},
		{
			Name: "Association for Computing Machinery (ACM)",
			Role: "Member",
		},
	},
}
