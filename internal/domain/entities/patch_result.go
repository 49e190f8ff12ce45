package entities

// FieldChange records one element or attribute written by a patcher.
type FieldChange struct {
	Key      FieldKey
	Name     string
	Value    string
	Inserted bool
}

// PatchResult is the rewritten text of a file plus the changes applied to it.
type PatchResult struct {
	Text    string
	Changes []FieldChange
}

// Changed reports whether the patched text differs from original.
func (r *PatchResult) Changed(original string) bool {
	return r.Text != original
}
