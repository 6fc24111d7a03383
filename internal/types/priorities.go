package types

// PrioritySet holds requirement phrases extracted from one job description,
// split by priority tier. Both lists preserve first-seen order and may be
// empty when the job text has no recognizable section headers.
type PrioritySet struct {
	MustHave   []string `json:"must_have"`
	NiceToHave []string `json:"nice_to_have"`
}
