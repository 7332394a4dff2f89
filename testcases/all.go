package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in subtest and reference file names.
var All = map[string][]TestCase{
	"basic":  basicCases,
	"shapes": shapeCases,
	"nested": nestedCases,
}
