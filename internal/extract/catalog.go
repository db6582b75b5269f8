package extract

import "regexp"

// skillCatalog is the fixed list of known skill terms. Catalog hits are
// matched case-insensitively on word boundaries, which guarantees recall on
// these terms regardless of how the phrase-mining heuristics behave.
var skillCatalog = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin",
	"Go", "Rust", "Scala", "R", "MATLAB", "Perl", "Shell", "Bash", "PowerShell",

	// Web development
	"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask",
	"ASP.NET", "Spring", "Ruby on Rails", "Laravel", "Symfony", "jQuery", "Bootstrap",
	"Next.js", "Nuxt.js", "Svelte", "Gatsby", "Ember.js", "Backbone.js",

	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Oracle", "SQLite", "Redis", "Cassandra",
	"DynamoDB", "Firebase", "Elasticsearch", "GraphQL", "MariaDB", "CouchDB",

	// Data science and AI
	"Machine Learning", "Deep Learning", "Data Science", "Data Analysis", "Statistics",
	"TensorFlow", "PyTorch", "Keras", "Scikit-learn", "Pandas", "NumPy", "NLTK",
	"Computer Vision", "NLP", "Big Data", "Hadoop", "Spark", "Tableau", "Power BI",
	"Jupyter", "Kaggle", "Data Visualization", "Predictive Modeling", "Statistical Analysis",

	// DevOps and cloud
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "Git",
	"CI/CD", "Terraform", "Ansible", "Linux", "Unix", "Networking", "Security",
	"Microservices", "Serverless", "DevOps", "Agile", "Scrum", "Kanban",

	// Project management
	"Project Management", "PMP", "Waterfall", "JIRA",
	"Trello", "Asana", "Risk Management", "Budgeting", "Planning", "Team Leadership",

	// Soft skills
	"Leadership", "Communication", "Teamwork", "Problem Solving", "Critical Thinking",
	"Time Management", "Creativity", "Adaptability", "Collaboration", "Emotional Intelligence",
	"Public Speaking", "Negotiation", "Conflict Resolution", "Decision Making", "Interpersonal Skills",
}

// skillCatalogRes holds a pre-compiled whole-word pattern per catalog term,
// built once at init since the catalog never changes.
var skillCatalogRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(skillCatalog))
	for i, term := range skillCatalog {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return res
}()

// industryOrder and industryKeywords drive the keyword vote in the job
// description extractor. The first industry in declaration order with any
// keyword hit wins; no hit yields "default".
var industryOrder = []string{
	"technology", "healthcare", "finance", "education", "retail", "manufacturing", "consulting",
}

var industryKeywords = map[string][]string{
	"technology":    {"software", "developer", "engineer", "IT", "technical", "programming", "data", "cloud"},
	"healthcare":    {"medical", "health", "patient", "clinical", "nurse", "doctor", "healthcare"},
	"finance":       {"financial", "banking", "investment", "accounting", "finance", "economics", "fintech"},
	"education":     {"teaching", "education", "school", "university", "learning", "academic", "training"},
	"retail":        {"sales", "retail", "customer", "store", "shop", "merchandise", "e-commerce"},
	"manufacturing": {"production", "manufacturing", "factory", "industrial", "plant", "logistics"},
	"consulting":    {"consulting", "consultant", "advisory", "strategy", "client", "professional services"},
}

// bulletRes match bullet-point lines in any of the common marker styles.
// The `*` pattern keeps the legacy not-backslash character class; changing it
// to not-asterisk alters observed extraction output.
var bulletRes = []*regexp.Regexp{
	regexp.MustCompile(`\x{2022}\s*([^\x{2022}\n]+)`),
	regexp.MustCompile(`-\s*([^\-\n]+)`),
	regexp.MustCompile(`\*\s*([^\\\n]+)`),
	regexp.MustCompile(`\d+\.\s*([^\n]+)`),
}

// jobTitleRes are the curated title patterns used by the experience
// entry-boundary heuristic.
var jobTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Software Engineer|Developer|Programmer)`),
	regexp.MustCompile(`(?i)(Data Scientist|Analyst|Engineer)`),
	regexp.MustCompile(`(?i)(Project Manager|Product Manager)`),
	regexp.MustCompile(`(?i)(Designer|Architect)`),
	regexp.MustCompile(`(?i)(Consultant|Specialist|Expert)`),
	regexp.MustCompile(`(?i)(Director|Manager|Lead|Head|Chief)`),
	regexp.MustCompile(`(?i)(Intern|Trainee|Junior|Senior|Principal)`),
}

// institutionRes flag lines that open an education entry.
var institutionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(University|College|Institute|School|Academy)`),
	regexp.MustCompile(`(?i)(Ltd|Inc|LLC|Corp|Corporation)`),
}

// degreeRes mine degree mentions out of an education block.
var degreeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Bachelor|Master|PhD|Doctorate|Associate|B\.S\.|M\.S\.|B\.A\.|M\.A\.|B\.Eng|M\.Eng|B\.Tech|M\.Tech)`),
	regexp.MustCompile(`(?i)(Degree|Diploma|Certificate|Certification)`),
	regexp.MustCompile(`(?i)\b(BSc|MSc|BA|MA|BEng|MEng|BTech|MTech)\b`),
}

// fieldRes mine a field of study out of an education block.
var fieldRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)in\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?i)of\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?i)majoring?\s+in\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?i)specializ(?:ing|ation)\s+in\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?i)focused\s+on\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

// companyRes mine a company name out of an experience description.
var companyRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)at\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?i)with\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Inc|Ltd|LLC|Corp|Corporation|Company))`),
	regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),`),
}

var companySuffixRe = regexp.MustCompile(`\s+(?:Inc|Ltd|LLC|Corp|Corporation|Company).*$`)

// phraseRe finds 2-4 word capitalized phrases for the generic noun-phrase
// mining path. Precision here is known to be poor; the catalog carries recall.
var phraseRe = regexp.MustCompile(`\b[A-Z][A-Za-z+#.]*(?:\s+[A-Za-z+#.]+){1,3}\b`)

// requiredSkillHeaders and preferredSkillHeaders are the role-specific
// synonym sets routed through the section segmenter.
var requiredSkillHeaders = []string{"required skills", "must have", "qualifications", "requirements", "skills needed"}
var preferredSkillHeaders = []string{"preferred skills", "nice to have", "plus", "bonus", "advantageous"}
var responsibilityHeaders = []string{"responsibilities", "duties", "what you'll do", "role"}
var qualificationHeaders = []string{"qualifications", "requirements", "what we're looking for", "skills required"}

var yearsRequiredRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\b`)

var educationLevelRe = regexp.MustCompile(`(?i)\b(?:Bachelor|Master|PhD|Doctorate|Associate|High School|Degree|Diploma|B\.S\.|M\.S\.|B\.A\.|M\.A\.|BSc|MSc|BA|MA)\b`)

// jobTitleFallbackRes are tried in order when the part-of-speech scan over the
// first lines finds nothing.
var jobTitleFallbackRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Job Title|Position|Role):\s*([^\n]+)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Engineer|Developer|Manager|Analyst|Specialist|Coordinator|Director|Lead|Head|Chief))`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:I|II|III|IV|V|Jr|Sr))\b`),
}

var titleWords = []string{
	"engineer", "developer", "manager", "analyst", "specialist",
	"coordinator", "director", "lead", "head", "chief",
}
