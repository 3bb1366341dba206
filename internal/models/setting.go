package models

// Setting is the storage row for one named settings record.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Alg   string `json:"alg"`
}
