// Package output serializes highlighting reports.
package output

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
)

// ToJSON serializes a report to JSON.
func ToJSON(r *models.Report, pretty bool) ([]byte, error) {
	return marshalJSON(r, pretty)
}

// ReportsToJSON serializes several reports as a JSON array.
func ReportsToJSON(rs []models.Report, pretty bool) ([]byte, error) {
	if rs == nil {
		rs = []models.Report{}
	}
	return marshalJSON(rs, pretty)
}

// ToYAML serializes a report to YAML. Non-finite numbers are written as
// .nan, .inf and -.inf.
func ToYAML(r *models.Report) ([]byte, error) {
	return marshalYAML(r)
}

// ReportsToYAML serializes several reports as a YAML sequence.
func ReportsToYAML(rs []models.Report) ([]byte, error) {
	return marshalYAML(rs)
}

func marshalJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func marshalYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
