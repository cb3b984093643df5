package questions

import (
	"fmt"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

var dataTemplates = map[assessment.Subcategory]Template{
	assessment.SubInputOutput: {
		Definition: "Data the product accepts and emits",
		Flavors: map[string]Text{
			FlavorSustainability: {
				Rationale: "Sustainability features ingest emission factors and emit offset claims; both directions carry trust and audit obligations.",
				Questions: []string{
					"What inputs feed the carbon footprint calculation (weights, distances, product categories), and which are user-supplied versus looked up?",
					"What exactly is shown to the shopper as an offset claim, and can it be reproduced from stored inputs later?",
					"How are emission-factor updates ingested, and do historical orders keep the factors they were computed with?",
				},
			},
			FlavorML: {
				Rationale: "Model inputs and outputs need the same contract rigor as any API, plus drift monitoring.",
				Questions: []string{
					"Which features enter the model, and what validates them before inference?",
					"What output ranges are legal, and what happens when the model emits something outside them?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Input validation and output correctness are where most functional defects live.",
				Questions: []string{
					fmt.Sprintf("What are all the ways %s enters the product, and is each validated consistently?", ctx.PrimaryDataType()),
					"Which outputs do other systems depend on, and are their formats versioned?",
					"Are input constraints (length, range, format) documented anywhere testable?",
				},
			}
		},
	},
	assessment.SubPreset: {
		Definition: "Data that ships with the product",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Seed and reference data is code that nobody reviews like code.",
				Questions: []string{
					"What reference data ships with the product, and who maintains it?",
					"What breaks when preset data is edited, deleted, or translated?",
				},
			}
		},
	},
	assessment.SubPersistent: {
		Definition: "Data that survives restarts",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Stored data outlives the code that wrote it; migrations and corruption need explicit answers.",
				Questions: []string{
					fmt.Sprintf("Where is %s stored, and what is the backup and restore story?", ctx.PrimaryDataType()),
					"Can old records still be read after a schema change?",
					"How is partially written data detected and repaired?",
				},
			}
		},
	},
	assessment.SubInterdependent: {
		Definition: "Data whose validity depends on other data",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Dependent records drift apart unless something enforces their relationship.",
				Questions: []string{
					"Which records reference others, and what happens when the referenced side is deleted?",
					"Are derived values recomputed or stored, and can they disagree with their sources?",
				},
			}
		},
	},
	assessment.SubSequencesAndCombinations: {
		Definition: "Order-sensitive and combined data operations",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Operations that work individually can corrupt state when reordered or interleaved.",
				Questions: []string{
					"Which operations must happen in a fixed order, and what enforces it?",
					"What happens when the same record is edited through two different paths in quick succession?",
				},
			}
		},
	},
	assessment.SubCardinality: {
		Definition: "Zero, one, and many of everything",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Every collection has a zero case and a many case, and most requirements only describe one.",
				Questions: []string{
					"What does every list, table, and report show when it is empty?",
					"What is the practical upper bound on each collection, and has it been tried?",
				},
			}
		},
	},
	assessment.SubBigAndLittle: {
		Definition: "Size extremes of values and payloads",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Size limits exist whether or not they are written down; unwritten ones are discovered in production.",
				Questions: []string{
					"What are the documented size limits per field and per payload, and what enforces them?",
					"How does the product behave at exactly the limit, and one past it?",
				},
			}
		},
	},
	assessment.SubInvalid: {
		Definition: "Data the product must reject",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Rejection behavior defines the product's robustness and its error-message quality.",
				Questions: []string{
					"For each input, what is the canonical invalid example and its expected error message?",
					"Is invalid data rejected at the boundary, or can it reach storage first?",
				},
			}
		},
	},
	assessment.SubLifecycle: {
		Definition: "Creation through deletion of data",
		Flavors: map[string]Text{
			FlavorSustainability: {
				Rationale: "Offset claims have a lifecycle of their own: purchased, retired, audited. Deleting order data must not orphan the claim trail.",
				Questions: []string{
					"When an order is refunded, what happens to its purchased offset?",
					"How long must offset audit records be retained, and by what regulation?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Deletion, retention, and archival are legal requirements as often as functional ones.",
				Questions: []string{
					fmt.Sprintf("What is the retention policy for %s, and what enforces it?", ctx.PrimaryDataType()),
					"Does deletion actually remove data, or only hide it?",
					"Can an archived record be restored, and does everything referencing it survive the round trip?",
				},
			}
		},
	},
}
