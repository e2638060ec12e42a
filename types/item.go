package types

import "strings"

// Item is one ordered element of the sequence to be partitioned.
//
// Items are typically story sentences: ID is the stable sentence identifier
// from the clustered dataset, Text is the raw sentence, and Weight is the
// tokenized word count. The core never resorts items; their original sequence
// order is authoritative.
type Item struct {
	// ID uniquely identifies this item within its source dataset.
	ID string `json:"id" csv:"ID"`

	// Text is the raw record content. It is carried through for persistence
	// and display but never interpreted by the partitioning core.
	Text string `json:"text" csv:"text"`

	// Valence and Arousal are upstream emotion predictions, passed through
	// verbatim to persisted partition records.
	Valence string `json:"v_pred,omitempty" csv:"V_pred"`
	Arousal string `json:"a_pred,omitempty" csv:"A_pred"`

	// Weight is the non-negative cost of the item (default tokenizer: word count).
	Weight int `json:"weight" csv:"Word_Count"`
}

// Tokenizer derives an item weight from its raw text.
//
// The default implementation is WordCount. Callers may substitute any
// deterministic function (e.g., syllable or character counts).
type Tokenizer func(text string) int

// WordCount is the default Tokenizer: the number of whitespace-delimited
// fields in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// TotalWeight returns the sum of the weights of items.
//
// Parameters:
//   - items: Item slice (may be empty or nil)
//
// Returns:
//   - int: Sum of item weights (0 for an empty slice)
func TotalWeight(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Weight
	}

	return total
}
