// Package manifest registers console commands declared in YAML files.
//
// A manifest declares a group of commands whose bodies are Go text templates
// extended with the sprig function library. The rendered template is the
// command's result:
//
//	namespace: Tools
//	group: Greetings
//	enums:
//	  Tone: [Polite, Rude]
//	commands:
//	  - name: greet
//	    description: Greets someone
//	    params: [string, Tone]
//	    template: '{{ if eq (index .Args 1).Name "Polite" }}Hello{{ else }}Oi{{ end }}, {{ index .Args 0 | title }}!'
//
// Template data exposes .Args (the coerced arguments), .Command and .Group.
//
// Source loads a directory of manifests as a commands.Source, and Watcher
// triggers a registry rescan whenever a manifest changes.
package manifest

// Manifest is the YAML document of one file.
type Manifest struct {
	Namespace string              `yaml:"namespace,omitempty"`
	Group     string              `yaml:"group"`
	Enums     map[string][]string `yaml:"enums,omitempty"`
	Commands  []Command           `yaml:"commands"`
}

// Command declares one templated command.
type Command struct {
	Name        string   `yaml:"name"`
	Group       string   `yaml:"group,omitempty"` // Overrides the manifest group
	Description string   `yaml:"description,omitempty"`
	Params      []string `yaml:"params,omitempty"`
	Template    string   `yaml:"template"`
}

// TemplateData is passed to command templates.
type TemplateData struct {
	Args    []any
	Command string
	Group   string
}
