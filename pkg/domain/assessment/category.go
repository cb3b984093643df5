// Package assessment holds the product-factor model: the seven SFDIPOT
// categories, their fixed subcategory sets, test opportunities, coverage
// scoring, and clarifying questions.
package assessment

// Category is one of the seven SFDIPOT product factors.
type Category string

const (
	CategoryStructure  Category = "structure"
	CategoryFunction   Category = "function"
	CategoryData       Category = "data"
	CategoryInterfaces Category = "interfaces"
	CategoryPlatform   Category = "platform"
	CategoryOperations Category = "operations"
	CategoryTime       Category = "time"
)

// Categories lists all seven categories in canonical SFDIPOT order.
// Iteration over category assessments always follows this order.
func Categories() []Category {
	return []Category{
		CategoryStructure,
		CategoryFunction,
		CategoryData,
		CategoryInterfaces,
		CategoryPlatform,
		CategoryOperations,
		CategoryTime,
	}
}

// IsValid reports whether c is one of the seven known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryStructure, CategoryFunction, CategoryData, CategoryInterfaces,
		CategoryPlatform, CategoryOperations, CategoryTime:
		return true
	}
	return false
}

// Subcategory identifies one assessable area within a category.
type Subcategory string

// Structure subcategories.
const (
	SubSourceCode         Subcategory = "source-code"
	SubHardware           Subcategory = "hardware"
	SubNonExecutableFiles Subcategory = "non-executable-files"
	SubCollateral         Subcategory = "collateral"
	SubDependencies       Subcategory = "dependencies"
)

// Function subcategories.
const (
	SubBusinessRules   Subcategory = "business-rules"
	SubCoreWorkflows   Subcategory = "core-workflows"
	SubCalculation     Subcategory = "calculation"
	SubTransformations Subcategory = "transformations"
	SubErrorHandling   Subcategory = "error-handling"
	SubSecurityRelated Subcategory = "security-related"
	SubStartupShutdown Subcategory = "startup-shutdown"
	SubInteractions    Subcategory = "interactions"
	SubMultimedia      Subcategory = "multimedia"
	SubTestability     Subcategory = "testability"
)

// Data subcategories.
const (
	SubInputOutput              Subcategory = "input-output"
	SubPreset                   Subcategory = "preset"
	SubPersistent               Subcategory = "persistent"
	SubInterdependent           Subcategory = "interdependent"
	SubSequencesAndCombinations Subcategory = "sequences-and-combinations"
	SubCardinality              Subcategory = "cardinality"
	SubBigAndLittle             Subcategory = "big-and-little"
	SubInvalid                  Subcategory = "invalid"
	SubLifecycle                Subcategory = "lifecycle"
)

// Interfaces subcategories.
const (
	SubUserInterface   Subcategory = "user-interface"
	SubSystemInterface Subcategory = "system-interface"
	SubAPISDK          Subcategory = "api-sdk"
	SubImportExport    Subcategory = "import-export"
)

// Platform subcategories.
const (
	SubExternalHardware     Subcategory = "external-hardware"
	SubExternalSoftware     Subcategory = "external-software"
	SubInternalComponents   Subcategory = "internal-components"
	SubExecutionEnvironment Subcategory = "execution-environment"
)

// Operations subcategories.
const (
	SubUsers          Subcategory = "users"
	SubEnvironment    Subcategory = "environment"
	SubCommonUse      Subcategory = "common-use"
	SubDisfavoredUse  Subcategory = "disfavored-use"
	SubExtremeUse     Subcategory = "extreme-use"
	SubSupportability Subcategory = "supportability"
)

// Time subcategories.
const (
	SubSchedules         Subcategory = "schedules"
	SubRatesAndFrequency Subcategory = "rates-and-frequency"
	SubConcurrency       Subcategory = "concurrency"
	SubTimeouts          Subcategory = "timeouts"
)

// subcategoriesByCategory is the closed model: adding a subcategory here
// changes coverage denominators everywhere.
var subcategoriesByCategory = map[Category][]Subcategory{
	CategoryStructure: {
		SubSourceCode, SubHardware, SubNonExecutableFiles, SubCollateral, SubDependencies,
	},
	CategoryFunction: {
		SubBusinessRules, SubCoreWorkflows, SubCalculation, SubTransformations,
		SubErrorHandling, SubSecurityRelated, SubStartupShutdown, SubInteractions,
		SubMultimedia, SubTestability,
	},
	CategoryData: {
		SubInputOutput, SubPreset, SubPersistent, SubInterdependent,
		SubSequencesAndCombinations, SubCardinality, SubBigAndLittle, SubInvalid,
		SubLifecycle,
	},
	CategoryInterfaces: {
		SubUserInterface, SubSystemInterface, SubAPISDK, SubImportExport,
	},
	CategoryPlatform: {
		SubExternalHardware, SubExternalSoftware, SubInternalComponents, SubExecutionEnvironment,
	},
	CategoryOperations: {
		SubUsers, SubEnvironment, SubCommonUse, SubDisfavoredUse, SubExtremeUse, SubSupportability,
	},
	CategoryTime: {
		SubSchedules, SubRatesAndFrequency, SubConcurrency, SubTimeouts,
	},
}

// declaredSubcategoryCounts are the coverage denominators. Kept as literals,
// independent of the subcategory lists, so a drifting edit to either side
// fails the parity test instead of silently shifting every percentage.
var declaredSubcategoryCounts = map[Category]int{
	CategoryStructure:  5,
	CategoryFunction:   10,
	CategoryData:       9,
	CategoryInterfaces: 4,
	CategoryPlatform:   4,
	CategoryOperations: 6,
	CategoryTime:       4,
}

// Subcategories returns the fixed, ordered subcategory set for a category.
// The returned slice must not be mutated.
func Subcategories(c Category) []Subcategory {
	return subcategoriesByCategory[c]
}

// DeclaredSubcategoryCount returns the coverage denominator for a category.
func DeclaredSubcategoryCount(c Category) int {
	return declaredSubcategoryCounts[c]
}

// CategoryOf returns the category a subcategory belongs to, or "" if unknown.
func CategoryOf(sub Subcategory) Category {
	for _, c := range Categories() {
		for _, s := range subcategoriesByCategory[c] {
			if s == sub {
				return c
			}
		}
	}
	return ""
}
