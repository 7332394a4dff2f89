package testcases

var basicCases = []TestCase{
	{
		Name: "empty",
		Bits: [][]int{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		},
		ClosePaths: true,
		Want:       "",
	},
	{
		Name: "empty_wide",
		Bits: [][]int{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		ClosePaths: false,
		Want:       "",
	},
	{
		Name:       "single_pixel",
		Bits:       [][]int{{1}},
		ClosePaths: true,
		Want:       "M0 0H1V1H0Z",
	},
	{
		Name:       "single_pixel_open",
		Bits:       [][]int{{1}},
		ClosePaths: false,
		Want:       "M0 0H1V1H0",
	},
	{
		Name:       "row",
		Bits:       [][]int{{1, 1, 1}},
		ClosePaths: true,
		Want:       "M0 0H3V1H0Z",
	},
	{
		Name:       "column",
		Bits:       [][]int{{1}, {1}, {1}},
		ClosePaths: true,
		Want:       "M0 0H1V3H0Z",
	},
	{
		Name: "full",
		Bits: [][]int{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 1},
		},
		ClosePaths: true,
		Want:       "M0 0H3V3H0Z",
	},
	{
		// two bars separated by a background row; the nesting
		// counters must reset between rows for the second bar to be
		// discovered as an outline
		Name: "two_bars",
		Bits: [][]int{
			{1, 1, 1},
			{0, 0, 0},
			{1, 1, 1},
		},
		ClosePaths: true,
		Want:       "M0 0H3V1H0ZM0 2H3V3H0Z",
	},
	{
		Name: "corners",
		Bits: [][]int{
			{1, 0, 1},
			{0, 0, 0},
			{1, 0, 1},
		},
		ClosePaths: true,
		Want:       "M0 0H1V1H0ZM2 0H3V1H2ZM0 2H1V3H0ZM2 2H3V3H2Z",
	},
}
