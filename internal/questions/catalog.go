package questions

// Catalog returns the built-in question bank. The slice is freshly
// allocated on each call so callers cannot mutate the shared data.
func Catalog() []Question {
	return []Question{
		// Arithmetic - beginner
		{
			ID:            "arith_1_1",
			Prompt:        "What is 15 + 27?",
			CorrectAnswer: "42",
			Explanation:   "Add the numbers: 15 + 27 = 42",
			Hints:         []string{"Line up the digits", "Add from right to left"},
			Difficulty:    1,
			Topic:         "arithmetic",
			Subtopic:      "addition",
		},
		{
			ID:            "arith_1_2",
			Prompt:        "Calculate 84 - 29",
			CorrectAnswer: "55",
			Explanation:   "Subtract: 84 - 29 = 55",
			Hints:         []string{"Borrow from the tens place if needed", "Work from right to left"},
			Difficulty:    1,
			Topic:         "arithmetic",
			Subtopic:      "subtraction",
		},
		{
			ID:            "arith_1_3",
			Prompt:        "What is 3/4 as a decimal?",
			CorrectAnswer: "0.75",
			Explanation:   "Divide 3 by 4: 3 / 4 = 0.75",
			Hints:         []string{"Divide the numerator by denominator", "3 / 4 = ?"},
			Difficulty:    1,
			Topic:         "arithmetic",
			Subtopic:      "decimals",
		},

		// Arithmetic - intermediate
		{
			ID:            "arith_2_1",
			Prompt:        "Calculate 156 x 23",
			CorrectAnswer: "3588",
			Explanation:   "Multiply: 156 x 23 = 3588",
			Hints:         []string{"Break it down: 156 x 20 + 156 x 3", "Use the distributive property"},
			Difficulty:    2,
			Topic:         "arithmetic",
			Subtopic:      "multiplication",
		},
		{
			ID:            "arith_2_2",
			Prompt:        "What is 25% of 240?",
			CorrectAnswer: "60",
			Explanation:   "25% = 1/4, so 240 / 4 = 60",
			Hints:         []string{"25% means 25 out of 100", "Convert to fraction: 25/100 = 1/4"},
			Difficulty:    2,
			Topic:         "arithmetic",
			Subtopic:      "percentages",
		},

		// Algebra - beginner
		{
			ID:            "alg_1_1",
			Prompt:        "Solve for x: x + 7 = 12",
			CorrectAnswer: "5",
			Explanation:   "Subtract 7 from both sides: x = 12 - 7 = 5",
			Hints:         []string{"Isolate x by subtracting 7", "What number plus 7 equals 12?"},
			Difficulty:    1,
			Topic:         "algebra",
			Subtopic:      "linear_equations",
		},
		{
			ID:            "alg_1_2",
			Prompt:        "Simplify: 3x + 5x",
			CorrectAnswer: "8x",
			Explanation:   "Combine like terms: 3x + 5x = (3 + 5)x = 8x",
			Hints:         []string{"Add the coefficients", "Keep the variable the same"},
			Difficulty:    1,
			Topic:         "algebra",
			Subtopic:      "expressions",
		},

		// Algebra - intermediate
		{
			ID:            "alg_2_1",
			Prompt:        "Solve: 2x - 5 = 11",
			CorrectAnswer: "8",
			Explanation:   "Add 5 to both sides: 2x = 16, then divide by 2: x = 8",
			Hints:         []string{"First add 5 to both sides", "Then divide by 2"},
			Difficulty:    2,
			Topic:         "algebra",
			Subtopic:      "linear_equations",
		},
		{
			ID:            "alg_2_2",
			Prompt:        "Factor: x^2 + 5x + 6",
			CorrectAnswer: "(x + 2)(x + 3)",
			Explanation:   "Find two numbers that multiply to 6 and add to 5: 2 and 3",
			Hints:         []string{"Look for two numbers that multiply to 6", "Those numbers should also add to 5"},
			Difficulty:    2,
			Topic:         "algebra",
			Subtopic:      "factoring",
		},

		// Algebra - advanced
		{
			ID:            "alg_3_1",
			Prompt:        "Solve using quadratic formula: x^2 - 4x + 3 = 0",
			CorrectAnswer: "x = 3 or x = 1",
			Explanation:   "Using x = (-b +/- sqrt(b^2-4ac))/2a where a=1, b=-4, c=3",
			Hints:         []string{"Use the quadratic formula", "a=1, b=-4, c=3"},
			Difficulty:    3,
			Topic:         "algebra",
			Subtopic:      "quadratic_equations",
		},

		// Geometry - beginner
		{
			ID:            "geo_1_1",
			Prompt:        "What is the area of a rectangle with length 8 and width 5?",
			CorrectAnswer: "40",
			Explanation:   "Area = length x width = 8 x 5 = 40 square units",
			Hints:         []string{"Use the formula: Area = length x width", "Multiply 8 by 5"},
			Difficulty:    1,
			Topic:         "geometry",
			Subtopic:      "area",
		},
		{
			ID:            "geo_1_2",
			Prompt:        "What is the perimeter of a square with side length 6?",
			CorrectAnswer: "24",
			Explanation:   "Perimeter = 4 x side length = 4 x 6 = 24",
			Hints:         []string{"A square has 4 equal sides", "Add all sides: 6 + 6 + 6 + 6"},
			Difficulty:    1,
			Topic:         "geometry",
			Subtopic:      "perimeter",
		},

		// Geometry - intermediate
		{
			ID:            "geo_2_1",
			Prompt:        "Find the area of a triangle with base 10 and height 6",
			CorrectAnswer: "30",
			Explanation:   "Area = (1/2) x base x height = (1/2) x 10 x 6 = 30",
			Hints:         []string{"Use the formula: Area = (1/2) x base x height", "Multiply by 1/2"},
			Difficulty:    2,
			Topic:         "geometry",
			Subtopic:      "area",
		},

		// Trigonometry - intermediate
		{
			ID:            "trig_2_1",
			Prompt:        "In a right triangle, if the opposite side is 3 and hypotenuse is 5, find sin theta",
			CorrectAnswer: "3/5 or 0.6",
			Explanation:   "sin theta = opposite/hypotenuse = 3/5 = 0.6",
			Hints:         []string{"sin theta = opposite/hypotenuse", "Divide 3 by 5"},
			Difficulty:    2,
			Topic:         "trigonometry",
			Subtopic:      "ratios",
		},

		// Calculus - advanced
		{
			ID:            "calc_3_1",
			Prompt:        "Find the derivative of f(x) = 3x^2 + 2x - 1",
			CorrectAnswer: "6x + 2",
			Explanation:   "f'(x) = 6x + 2 using the power rule",
			Hints:         []string{"Use the power rule: d/dx[x^n] = nx^(n-1)", "Derivative of constant is 0"},
			Difficulty:    3,
			Topic:         "calculus",
			Subtopic:      "derivatives",
		},
	}
}
