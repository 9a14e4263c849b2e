package listview

import (
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the result with the same document shape as
// [Result.MarshalJSON].
func (r Result[S, R]) MarshalYAML() (any, error) {
	return r.document(), nil
}

// UnmarshalYAML decodes the form produced by [Result.MarshalYAML].
func (r *Result[S, R]) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		DataBlob   map[string]yaml.Node `yaml:"dataBlob"`
		SectionIDs []int                `yaml:"sectionIDs"`
		RowIDs     [][]string           `yaml:"rowIDs"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	keys := make([]string, 0, len(raw.DataBlob))
	for k := range raw.DataBlob {
		keys = append(keys, k)
	}
	res, err := fromDocument(raw.SectionIDs, raw.RowIDs, keys,
		func(key string, v *S) error {
			node := raw.DataBlob[key]
			return node.Decode(v)
		},
		func(key string, v *R) error {
			node := raw.DataBlob[key]
			return node.Decode(v)
		},
	)
	if err != nil {
		return err
	}
	*r = res
	return nil
}

func writeYAML[S, R any](w io.Writer, res Result[S, R]) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}
