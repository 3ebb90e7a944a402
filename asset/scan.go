package asset

import (
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// pathSuffix marks path-valued fields. A relative string value under a
// field whose name ends with this suffix is resolved against the directory
// of the card file that defined it.
const pathSuffix = "_path"

func isCardFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// decodeCardFile reads every YAML document in one card description file.
// Each document must be a mapping with a mandatory string 'name' field.
func decodeCardFile(r io.Reader, file, source string) ([]Metadata, error) {
	var records []Metadata

	dec := yaml.NewDecoder(r)
	for {
		var doc map[string]interface{}
		if err := dec.Decode(&doc); err != nil {
			if err == io.EOF {
				break
			}
			return nil, NewConfigurationError(source, "the file '%s' cannot be parsed as YAML: %v", file, err)
		}
		if doc == nil {
			continue
		}

		name, ok := doc[FieldName].(string)
		if !ok || name == "" {
			return nil, NewConfigurationError(source, "a record in the file '%s' does not have a 'name' field", file)
		}

		record := Metadata(doc)
		record[FieldSource] = source

		records = append(records, record)
	}

	return records, nil
}

// scanCardFS walks an fs.FS for card description files and builds the
// name-to-record index. resolvePath, when non-nil, maps a relative
// path-valued field against the directory of the defining file.
func scanCardFS(fsys fs.FS, source string, resolvePath func(dir, rel string) string) (map[string]Metadata, error) {
	index := make(map[string]Metadata)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return NewConfigurationError(source, "the directory cannot be traversed: %v", err)
		}
		if d.IsDir() || !isCardFile(p) {
			return nil
		}

		f, err := fsys.Open(p)
		if err != nil {
			return NewConfigurationError(source, "the file '%s' cannot be opened: %v", p, err)
		}
		defer f.Close()

		records, err := decodeCardFile(f, p, source)
		if err != nil {
			return err
		}

		dir := path.Dir(p)
		for _, record := range records {
			name := record[FieldName].(string)
			if _, exists := index[name]; exists {
				return NewConfigurationError(source, "two records have the same name '%s'", name)
			}
			if resolvePath != nil {
				resolvePathFields(record, dir, resolvePath)
			}
			index[name] = record
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return index, nil
}

func resolvePathFields(record Metadata, dir string, resolve func(dir, rel string) string) {
	for key, value := range record {
		if !strings.HasSuffix(key, pathSuffix) {
			continue
		}
		if rel, ok := value.(string); ok && rel != "" && !path.IsAbs(rel) {
			record[key] = resolve(dir, rel)
		}
	}
}
