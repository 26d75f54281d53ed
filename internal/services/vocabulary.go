package services

// DefaultSkillVocabulary returns the built-in tech skill vocabulary. Callers
// that need a different lexicon (or a small test fixture) construct their own
// SkillVocabulary instead.
func DefaultSkillVocabulary() SkillVocabulary {
	return SkillVocabulary{
		Keywords: []string{
			"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin",
			"go", "rust", "typescript", "r", "matlab", "scala", "perl",
			"html", "css", "sql", "nosql", "mongodb", "postgresql", "mysql", "oracle",
			"react", "angular", "vue", "node.js", "express", "django", "flask", "spring",
			"machine learning", "deep learning", "ai", "nlp", "computer vision",
			"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
			"docker", "kubernetes", "jenkins", "git", "github", "gitlab",
			"aws", "azure", "gcp", "cloud", "devops", "ci/cd",
			"rest api", "graphql", "microservices", "agile", "scrum",
			"linux", "unix", "bash", "shell", "powershell",
			"tableau", "power bi", "excel", "data visualization",
			"spark", "hadoop", "kafka", "redis", "elasticsearch",
			"figma", "sketch", "adobe xd", "photoshop", "illustrator",
			"ux", "ui", "wireframing", "prototyping", "user research",
			"terraform", "ansible", "puppet", "chef",
			"monitoring", "prometheus", "grafana", "elk",
			"security", "networking", "vpn", "firewall",
			"jira", "confluence", "slack", "trello",
			"testing", "junit", "pytest", "selenium", "jest",
			"webpack", "babel", "npm", "yarn",
			"responsive design", "bootstrap", "tailwind", "sass", "less",
			"redux", "mobx", "vuex", "next.js", "nuxt.js",
			"mlops", "model deployment", "feature engineering",
			"neural networks", "cnn", "rnn", "lstm", "transformer",
			"statistics", "probability", "mathematics", "algorithms",
			"data structures", "object-oriented programming", "functional programming",
			"api", "json", "xml", "yaml", "regex",
		},
		Phrases: []string{
			"machine learning", "deep learning", "computer vision",
			"natural language processing", "nlp", "data science",
			"data visualization", "web development", "mobile development",
			"cloud computing", "artificial intelligence", "big data",
			"user experience", "user interface", "responsive design",
			"rest api", "feature engineering", "model deployment",
			"neural networks", "object-oriented programming",
			"functional programming", "data structures",
		},
	}
}

// DefaultSkillCategories returns the built-in category tables used to bucket
// skills in match results. A skill in no table is omitted from the
// categorized output. Ordered so the result buckets render consistently.
func DefaultSkillCategories() []SkillCategory {
	return []SkillCategory{
		{Name: "Programming Languages", Skills: []string{
			"python", "java", "javascript", "c++", "c#", "ruby", "php",
			"swift", "kotlin", "go", "rust", "typescript", "r", "scala",
		}},
		{Name: "Web Development", Skills: []string{
			"html", "css", "react", "angular", "vue", "node.js", "express",
			"django", "flask", "spring", "bootstrap", "tailwind", "sass",
			"webpack", "next.js", "responsive design",
		}},
		{Name: "Databases", Skills: []string{
			"sql", "nosql", "mongodb", "postgresql", "mysql", "oracle",
			"redis", "elasticsearch",
		}},
		{Name: "Machine Learning & AI", Skills: []string{
			"machine learning", "deep learning", "ai", "nlp", "computer vision",
			"tensorflow", "pytorch", "keras", "scikit-learn", "neural networks",
			"cnn", "rnn", "lstm", "transformer",
		}},
		{Name: "Data Science", Skills: []string{
			"pandas", "numpy", "statistics", "data visualization", "tableau",
			"power bi", "spark", "hadoop", "big data",
		}},
		{Name: "DevOps & Cloud", Skills: []string{
			"docker", "kubernetes", "jenkins", "aws", "azure", "gcp",
			"terraform", "ansible", "ci/cd", "linux", "bash",
		}},
		{Name: "Design", Skills: []string{
			"figma", "sketch", "adobe xd", "photoshop", "illustrator",
			"ux", "ui", "wireframing", "prototyping",
		}},
		{Name: "Tools & Others", Skills: []string{
			"git", "github", "jira", "agile", "scrum", "rest api",
			"graphql", "testing", "selenium",
		}},
	}
}
