package skills

var builtin = map[string]int{
	// Programming
	"Python": 90,
	"C":      75,
	"Java":   75,
	"SQL":    75,
	// Web
	"HTML":       95,
	"CSS":        95,
	"JavaScript": 80,
	"ReactJS":    80,
	// ML & AI
	"PyTorch":      90,
	"Scikit-learn": 90,
	"HuggingFace":  80,
	"TensorFlow":   80,
	"OpenCV":       80,
	// Gen AI
	"LLMs":               90,
	"SLMs":               90,
	"Prompt Engineering": 95,
	"Model Fine-tuning":  85,
	"RAG":                85,
	"Model Optimization": 85,
	// Data Science
	"NumPy":               95,
	"Pandas":              95,
	"Matplotlib":          85,
	"Data Preprocessing":  85,
	"Feature Engineering": 85,
	// Tools
	"Docker":           80,
	"n8n":              70,
	"VS Code":          95,
	"MS Office":        85,
	"Canva":            95,
	"Jupyter Notebook": 95,
	// Soft Skills
	"Leadership":          90,
	"Problem Solving":     95,
	"Creative Thinking":   95,
	"Critical Thinking":   95,
	"Teamwork":            95,
	"Literature Review":   90,
	"Experimental Design": 85,
}

// Builtin returns the table the site ships with.
func Builtin(defaultPercent int) *Table {
	t, err := NewTable(builtin, defaultPercent)
	if err != nil {
		panic(err)
	}
	return t
}
