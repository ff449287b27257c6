package remote

// Built-in sheets served when the remote repository is unreachable.
var sampleSlugs = []string{"javascript", "python", "git"}

var sampleSheets = map[string]string{
	"javascript": "# JavaScript Cheatsheet\n" +
		"\n" +
		"## Variables\n" +
		"```javascript\n" +
		"let name = 'John';\n" +
		"const age = 30;\n" +
		"var oldWay = 'deprecated';\n" +
		"```\n" +
		"\n" +
		"## Functions\n" +
		"```javascript\n" +
		"function greet(name) {\n" +
		"  return `Hello, ${name}!`;\n" +
		"}\n" +
		"\n" +
		"const arrowFunc = (name) => `Hello, ${name}!`;\n" +
		"```",
	"python": "# Python Cheatsheet\n" +
		"\n" +
		"## Variables\n" +
		"```python\n" +
		"name = \"John\"\n" +
		"age = 30\n" +
		"is_student = True\n" +
		"```\n" +
		"\n" +
		"## Functions\n" +
		"```python\n" +
		"def greet(name):\n" +
		"    return f\"Hello, {name}!\"\n" +
		"\n" +
		"lambda_func = lambda name: f\"Hello, {name}!\"\n" +
		"```",
	"git": "# Git Cheatsheet\n" +
		"\n" +
		"## Basic Commands\n" +
		"```bash\n" +
		"git init\n" +
		"git add .\n" +
		"git commit -m \"message\"\n" +
		"git push origin main\n" +
		"```\n" +
		"\n" +
		"## Branching\n" +
		"```bash\n" +
		"git branch feature-name\n" +
		"git checkout feature-name\n" +
		"git merge feature-name\n" +
		"```",
}

// SampleSlugs returns a copy of the built-in listing.
func SampleSlugs() []string {
	return append([]string(nil), sampleSlugs...)
}

// Sample returns the built-in content for slug, if any.
func Sample(slug string) (string, bool) {
	content, ok := sampleSheets[slug]
	return content, ok
}

// Placeholder is the document shown when no content can be found at all.
func Placeholder(slug string) string {
	return "# " + slug + "\n\nContent not available."
}
