package output

import (
	"gopkg.in/yaml.v3"

	"github.com/sonemaro/linegrep/pkg/logger"
	"github.com/sonemaro/linegrep/pkg/search"
)

func (f *formatter) formatYAML(report *search.Report) (string, error) {
	f.log.Debug("Formatting YAML output")

	// Reuse JSON structure for YAML output
	output := f.buildOutput(report)

	bytes, err := yaml.Marshal(output)
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")
		return "", err
	}

	return string(bytes), nil
}
