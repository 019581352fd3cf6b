package installers

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/template"
)

// Params carries the values substituted into the manifest template.
type Params struct {
	Name      string
	Namespace string
	Image     string
	Port      uint
	Replicas  uint
}

// K8S renders the Kubernetes manifest template to output. The template file
// may be "-" to read from stdin.
func K8S(ctx context.Context, output io.Writer, yamlTemplateFile string, params Params) error {
	in, err := openTemplate(yamlTemplateFile)
	if err != nil {
		return fmt.Errorf("failed to open template file %q: %w", yamlTemplateFile, err)
	}
	defer in.Close()
	txt, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read template file %q: %w", yamlTemplateFile, err)
	}

	tmpl, err := template.New("k8s").Parse(string(txt))
	if err != nil {
		return fmt.Errorf("failed to parse template file %q: %w", yamlTemplateFile, err)
	}

	return tmpl.Execute(output, struct {
		Name      string
		Namespace string
		Image     string
		Port      string
		Replicas  string
	}{
		Name:      params.Name,
		Namespace: params.Namespace,
		Image:     params.Image,
		Port:      strconv.FormatUint(uint64(params.Port), 10),
		Replicas:  strconv.FormatUint(uint64(params.Replicas), 10),
	})
}

func openTemplate(yamlTemplateFile string) (io.ReadCloser, error) {
	if yamlTemplateFile == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fd, err := os.Open(yamlTemplateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open template file %q: %w", yamlTemplateFile, err)
	}
	return fd, nil
}
