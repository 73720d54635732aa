package catalog

import "fmt"

// masterTopics is the known-topic list consulted by fuzzy matching. Order
// matters: the first similar label with content wins.
var masterTopics = []string{
	// physics
	"Newton's First Law of Motion",
	"Newton's Second Law of Motion",
	"Newton's Third Law of Motion",
	"Thermodynamics",
	"Electromagnetism",
	"Optics",
	"Quantum Mechanics",

	// chemistry
	"Nature of Matter",
	"Periodic Table",
	"Chemical Bonding",
	"Acids and Bases",
	"Organic Chemistry",

	// math
	"Sets",
	"Relations & Functions",
	"Trigonometric Functions",
	"Matrices",
	"Calculus",
	"Probability",
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		MasterTopics: append([]string(nil), masterTopics...),
		Questions:    NewSection[Question](),
		Documents:    NewSection[Document](),
		Quizzes:      defaultQuizzes(),
	}

	c.Questions.Table.Put(SubjectPhysics, "Newton's First Law of Motion", newtonFirstLawQuestions)
	c.Questions.Table.Put(SubjectPhysics, "Thermodynamics", thermodynamicsQuestions)
	c.Questions.Table.Put(SubjectChemistry, "Nature of Matter", natureOfMatterQuestions)
	c.Questions.Table.Put(SubjectChemistry, "Periodic Table", periodicTableQuestions)
	c.Questions.Table.Put(SubjectMath, "Sets", setsQuestions)
	c.Questions.Table.Put(SubjectMath, "Matrices", matricesQuestions)

	c.Questions.Fallback[SubjectPhysics] = thermodynamicsQuestions
	c.Questions.Fallback[SubjectChemistry] = periodicTableQuestions
	c.Questions.Fallback[SubjectMath] = setsQuestions

	c.Documents.Table.Put(SubjectPhysics, "Newton's First Law of Motion", []Document{
		{ID: "physics-newton-first-law-2022", Title: "Newton's First Law of Motion - CBSE 2022", Year: 2022, URL: "/pdfs/physics/newtons-first-law-2022.pdf", Pages: 5, Source: "CBSE"},
		{ID: "physics-newton-first-law-2021", Title: "Newton's First Law of Motion - CBSE 2021", Year: 2021, URL: "/pdfs/physics/newtons-first-law-2021.pdf", Pages: 4, Source: "CBSE"},
		{ID: "physics-newton-first-law-jee-2022", Title: "Newton's Laws - JEE Main 2022", Year: 2022, URL: "/pdfs/physics/newtons-laws-jee-2022.pdf", Pages: 8, Source: "JEE Main"},
	})
	c.Documents.Table.Put(SubjectPhysics, "Thermodynamics", []Document{
		{ID: "physics-thermodynamics-2022", Title: "Thermodynamics - CBSE 2022", Year: 2022, URL: "/pdfs/physics/thermodynamics-2022.pdf", Pages: 6, Source: "CBSE"},
		{ID: "physics-thermodynamics-2021", Title: "Thermodynamics - CBSE 2021", Year: 2021, URL: "/pdfs/physics/thermodynamics-2021.pdf", Pages: 5, Source: "CBSE"},
	})
	c.Documents.Table.Put(SubjectChemistry, "Nature of Matter", []Document{
		{ID: "chemistry-nature-of-matter-2022", Title: "Nature of Matter - CBSE 2022", Year: 2022, URL: "/pdfs/chemistry/nature-of-matter-2022.pdf", Pages: 4, Source: "CBSE"},
		{ID: "chemistry-nature-of-matter-2021", Title: "Nature of Matter - CBSE 2021", Year: 2021, URL: "/pdfs/chemistry/nature-of-matter-2021.pdf", Pages: 3, Source: "CBSE"},
	})
	c.Documents.Table.Put(SubjectChemistry, "Periodic Table", []Document{
		{ID: "chemistry-periodic-table-2022", Title: "Periodic Table - CBSE 2022", Year: 2022, URL: "/pdfs/chemistry/periodic-table-2022.pdf", Pages: 7, Source: "CBSE"},
		{ID: "chemistry-periodic-table-2021", Title: "Periodic Table - CBSE 2021", Year: 2021, URL: "/pdfs/chemistry/periodic-table-2021.pdf", Pages: 6, Source: "CBSE"},
		{ID: "chemistry-periodic-table-jee-2022", Title: "Periodic Table - JEE Main 2022", Year: 2022, URL: "/pdfs/chemistry/periodic-table-jee-2022.pdf", Pages: 9, Source: "JEE Main"},
	})
	c.Documents.Table.Put(SubjectMath, "Sets", []Document{
		{ID: "math-sets-2022", Title: "Sets - CBSE 2022", Year: 2022, URL: "/pdfs/math/sets-2022.pdf", Pages: 5, Source: "CBSE"},
		{ID: "math-sets-2021", Title: "Sets - CBSE 2021", Year: 2021, URL: "/pdfs/math/sets-2021.pdf", Pages: 4, Source: "CBSE"},
	})
	c.Documents.Table.Put(SubjectMath, "Matrices", []Document{
		{ID: "math-matrices-2022", Title: "Matrices - CBSE 2022", Year: 2022, URL: "/pdfs/math/matrices-2022.pdf", Pages: 6, Source: "CBSE"},
		{ID: "math-matrices-2021", Title: "Matrices - CBSE 2021", Year: 2021, URL: "/pdfs/math/matrices-2021.pdf", Pages: 5, Source: "CBSE"},
		{ID: "math-matrices-jee-2022", Title: "Matrices - JEE Main 2022", Year: 2022, URL: "/pdfs/math/matrices-jee-2022.pdf", Pages: 8, Source: "JEE Main"},
	})

	for _, subject := range Subjects {
		c.Documents.Fallback[subject] = samplePapers(subject)
	}
	return c
}

// samplePapers builds the generic sample papers shown when no topic matches.
func samplePapers(subject Subject) []Document {
	return []Document{
		{ID: fmt.Sprintf("sample-%s-cbse-2022", subject), Title: fmt.Sprintf("CBSE %s Sample Paper 2022", subject.Title()), Year: 2022, URL: "/pdfs/sample-cbse-2022.pdf", Pages: 10, Source: "CBSE"},
		{ID: fmt.Sprintf("sample-%s-cbse-2021", subject), Title: fmt.Sprintf("CBSE %s Sample Paper 2021", subject.Title()), Year: 2021, URL: "/pdfs/sample-cbse-2021.pdf", Pages: 8, Source: "CBSE"},
		{ID: fmt.Sprintf("sample-%s-jee-2022", subject), Title: fmt.Sprintf("JEE Main %s Sample Paper 2022", subject.Title()), Year: 2022, URL: "/pdfs/sample-jee-2022.pdf", Pages: 12, Source: "JEE Main"},
	}
}

var newtonFirstLawQuestions = []Question{
	{
		ID:   1,
		Text: "Which of the following best describes Newton's First Law of Motion?",
		Options: []string{
			"An object at rest stays at rest, and an object in motion stays in motion unless acted upon by an external force",
			"Force equals mass times acceleration",
			"For every action, there is an equal and opposite reaction",
			"The acceleration of an object is directly proportional to the net force acting on it",
		},
		CorrectAnswer: 0,
		Explanation:   "Newton's First Law, also known as the Law of Inertia, states that an object will remain at rest or in uniform motion in a straight line unless acted upon by an external force.",
	},
	{
		ID:   2,
		Text: "A book is sitting on a table. Which forces are acting on the book?",
		Options: []string{
			"Only gravity",
			"Only the normal force from the table",
			"Both gravity and the normal force from the table",
			"No forces are acting on the book",
		},
		CorrectAnswer: 2,
		Explanation:   "The book has gravity pulling it downward and the normal force from the table pushing upward. These forces are balanced, keeping the book at rest.",
	},
	{
		ID:   3,
		Text: "Why do passengers in a car feel pushed back into their seats when the car accelerates forward?",
		Options: []string{
			"Because of Newton's Third Law",
			"Because of Newton's First Law (inertia)",
			"Because of gravity",
			"Because of the car's engine power",
		},
		CorrectAnswer: 1,
		Explanation:   "This is due to inertia (Newton's First Law). The body tends to remain at rest while the car moves forward, creating the feeling of being pushed back.",
	},
}

var thermodynamicsQuestions = []Question{
	{
		ID:            1,
		Text:          "Which law of thermodynamics states that energy can neither be created nor destroyed?",
		Options:       []string{"Zeroth Law", "First Law", "Second Law", "Third Law"},
		CorrectAnswer: 1,
		Explanation:   "The First Law of Thermodynamics, also known as the Law of Conservation of Energy, states that energy cannot be created or destroyed, only transformed from one form to another.",
	},
	{
		ID:            2,
		Text:          "What is the SI unit of temperature?",
		Options:       []string{"Celsius", "Fahrenheit", "Kelvin", "Rankine"},
		CorrectAnswer: 2,
		Explanation:   "Kelvin (K) is the SI unit of temperature. Unlike Celsius and Fahrenheit, it's an absolute temperature scale, with 0 K being absolute zero.",
	},
	{
		ID:   3,
		Text: "In an adiabatic process:",
		Options: []string{
			"Temperature remains constant",
			"Pressure remains constant",
			"No heat is transferred",
			"Volume remains constant",
		},
		CorrectAnswer: 2,
		Explanation:   "An adiabatic process is one in which no heat is transferred between the system and its surroundings.",
	},
}

var natureOfMatterQuestions = []Question{
	{
		ID:            1,
		Text:          "Which of the following is NOT a state of matter?",
		Options:       []string{"Solid", "Liquid", "Gas", "Energy"},
		CorrectAnswer: 3,
		Explanation:   "The three classical states of matter are solid, liquid, and gas. Energy is a form of power, not a state of matter. Modern physics also recognizes plasma as a fourth state of matter.",
	},
	{
		ID:   2,
		Text: "What is the primary difference between solids and liquids?",
		Options: []string{
			"Solids have definite shape and volume, liquids have definite volume but not shape",
			"Solids are always crystalline, liquids are always amorphous",
			"Solids cannot flow, liquids can flow",
			"Solids have higher density than liquids",
		},
		CorrectAnswer: 0,
		Explanation:   "Solids have definite shape and volume due to strong intermolecular forces that hold particles in fixed positions. Liquids have definite volume but take the shape of their container because particles can move past each other while remaining close together.",
	},
	{
		ID:   3,
		Text: "Which statement about gases is correct?",
		Options: []string{
			"Gases have definite shape and volume",
			"Gases have definite volume but not shape",
			"Gases have neither definite shape nor definite volume",
			"Gases have definite shape but not definite volume",
		},
		CorrectAnswer: 2,
		Explanation:   "Gases have neither definite shape nor definite volume. They expand to fill their container completely and can be compressed significantly because their particles are far apart and move freely.",
	},
}

var periodicTableQuestions = []Question{
	{
		ID:            1,
		Text:          "Who is credited with creating the modern periodic table?",
		Options:       []string{"Antoine Lavoisier", "John Dalton", "Dmitri Mendeleev", "Henry Moseley"},
		CorrectAnswer: 2,
		Explanation:   "Dmitri Mendeleev is credited with creating the first widely recognized periodic table in 1869, arranging elements by atomic weight and chemical properties.",
	},
	{
		ID:            2,
		Text:          "What property is used to arrange elements in the modern periodic table?",
		Options:       []string{"Atomic mass", "Atomic number", "Electron configuration", "Chemical reactivity"},
		CorrectAnswer: 1,
		Explanation:   "The modern periodic table arranges elements by atomic number (number of protons), which increases as you move from left to right across the table.",
	},
	{
		ID:            3,
		Text:          "Which group in the periodic table contains the noble gases?",
		Options:       []string{"Group 1", "Group 7", "Group 8", "Group 18"},
		CorrectAnswer: 3,
		Explanation:   "The noble gases are found in Group 18 (formerly Group 8A or Group 0) of the periodic table. They are characterized by their full valence electron shells and low reactivity.",
	},
}

var setsQuestions = []Question{
	{
		ID:            1,
		Text:          "What is the union of sets A = {1, 2, 3} and B = {3, 4, 5}?",
		Options:       []string{"{1, 2, 3, 4, 5}", "{1, 2, 3, 3, 4, 5}", "{3}", "{1, 2, 4, 5}"},
		CorrectAnswer: 0,
		Explanation:   "The union of sets A and B, denoted as A ∪ B, contains all elements that are in either A or B or both. So A ∪ B = {1, 2, 3, 4, 5}.",
	},
	{
		ID:            2,
		Text:          "What is the intersection of sets A = {1, 2, 3} and B = {3, 4, 5}?",
		Options:       []string{"{1, 2, 3, 4, 5}", "{}", "{3}", "{1, 2, 4, 5}"},
		CorrectAnswer: 2,
		Explanation:   "The intersection of sets A and B, denoted as A ∩ B, contains all elements that are in both A and B. So A ∩ B = {3}.",
	},
	{
		ID:            3,
		Text:          "If U = {1, 2, 3, 4, 5, 6, 7, 8, 9, 10} is the universal set and A = {2, 4, 6, 8, 10}, what is the complement of A?",
		Options:       []string{"{1, 3, 5, 7, 9}", "{2, 4, 6, 8, 10}", "{}", "{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}"},
		CorrectAnswer: 0,
		Explanation:   "The complement of set A, denoted as A', contains all elements in the universal set U that are not in A. So A' = {1, 3, 5, 7, 9}.",
	},
}

var matricesQuestions = []Question{
	{
		ID:            1,
		Text:          "What is the order of the matrix [[1, 2, 3], [4, 5, 6]]?",
		Options:       []string{"2 × 3", "3 × 2", "2 × 2", "3 × 3"},
		CorrectAnswer: 0,
		Explanation:   "The order of a matrix is given as (number of rows) × (number of columns). This matrix has 2 rows and 3 columns, so its order is 2 × 3.",
	},
	{
		ID:   2,
		Text: "If A = [[1, 2], [3, 4]] and B = [[5, 6], [7, 8]], what is A + B?",
		Options: []string{
			"[[6, 8], [10, 12]]",
			"[[5, 12], [21, 32]]",
			"[[1, 2, 5, 6], [3, 4, 7, 8]]",
			"[[1, 5], [2, 6], [3, 7], [4, 8]]",
		},
		CorrectAnswer: 0,
		Explanation:   "Matrix addition is performed element by element. A + B = [[1+5, 2+6], [3+7, 4+8]] = [[6, 8], [10, 12]].",
	},
	{
		ID:            3,
		Text:          "What is the determinant of the matrix [[4, 2], [3, 1]]?",
		Options:       []string{"2", "-2", "5", "10"},
		CorrectAnswer: 1,
		Explanation:   "For a 2×2 matrix [[a, b], [c, d]], the determinant is ad - bc. So for [[4, 2], [3, 1]], the determinant is 4×1 - 2×3 = 4 - 6 = -2.",
	},
}

func defaultQuizzes() []Quiz {
	return []Quiz{
		{
			ID:          "physics-mechanics-newton-laws",
			Title:       "Newton's Laws of Motion",
			Description: "Test your knowledge of Newton's three laws of motion",
			Subject:     SubjectPhysics,
			Topic:       "Mechanics",
			Chapter:     "Newton's Laws",
			Difficulty:  DifficultyIntermediate,
			Questions: []Question{
				{ID: 1, Text: "Which law of motion states that an object will remain at rest or in uniform motion unless acted upon by an external force?", Options: []string{"Zeroth Law", "First Law", "Second Law", "Third Law"}, CorrectAnswer: 1, Explanation: "Newton's First Law, also known as the Law of Inertia, states that an object will remain at rest or in uniform motion in a straight line unless acted upon by an external force."},
				{ID: 2, Text: "The equation F = ma represents which of Newton's laws?", Options: []string{"First Law", "Second Law", "Third Law", "Conservation of Energy"}, CorrectAnswer: 1, Explanation: "Newton's Second Law states that the acceleration of an object is directly proportional to the net force acting on it and inversely proportional to its mass. This is represented by the equation F = ma."},
				{ID: 3, Text: "Which law states that for every action, there is an equal and opposite reaction?", Options: []string{"First Law", "Second Law", "Third Law", "Law of Conservation of Momentum"}, CorrectAnswer: 2, Explanation: "Newton's Third Law states that for every action, there is an equal and opposite reaction. This means that when one object exerts a force on a second object, the second object exerts an equal and opposite force on the first."},
				{ID: 4, Text: "A book is at rest on a table. According to Newton's laws, which forces are in equilibrium?", Options: []string{"Gravity and normal force", "Friction and gravity", "Normal force and friction", "There are no forces in equilibrium"}, CorrectAnswer: 0, Explanation: "The gravitational force pulling the book downward is balanced by the normal force exerted upward by the table, keeping the book at rest."},
				{ID: 5, Text: "If you push a box across a floor with constant force and it moves with constant velocity, what can you conclude?", Options: []string{"There is no friction", "The friction force equals your pushing force", "The box has no mass", "Newton's laws don't apply in this situation"}, CorrectAnswer: 1, Explanation: "If the box moves with constant velocity, the net force must be zero (Newton's First Law). This means the friction force must be equal in magnitude and opposite in direction to your pushing force."},
			},
		},
		{
			ID:          "physics-thermodynamics-basics",
			Title:       "Thermodynamics Basics",
			Description: "Test your understanding of basic thermodynamic principles",
			Subject:     SubjectPhysics,
			Topic:       "Thermodynamics",
			Chapter:     "Basic Principles",
			Difficulty:  DifficultyIntermediate,
			Questions: []Question{
				{ID: 1, Text: "Which law of thermodynamics states that energy can neither be created nor destroyed?", Options: []string{"Zeroth Law", "First Law", "Second Law", "Third Law"}, CorrectAnswer: 1, Explanation: "The First Law of Thermodynamics, also known as the Law of Conservation of Energy, states that energy cannot be created or destroyed, only transformed from one form to another."},
				{ID: 2, Text: "What is the SI unit of temperature?", Options: []string{"Celsius", "Fahrenheit", "Kelvin", "Rankine"}, CorrectAnswer: 2, Explanation: "Kelvin (K) is the SI unit of temperature. Unlike Celsius and Fahrenheit, it's an absolute temperature scale, with 0 K being absolute zero."},
				{ID: 3, Text: "Which of the following is NOT a state function?", Options: []string{"Internal Energy", "Enthalpy", "Work", "Entropy"}, CorrectAnswer: 2, Explanation: "Work is a path function, not a state function. This means its value depends on the path taken between the initial and final states, not just on those states themselves."},
				{ID: 4, Text: "The second law of thermodynamics introduces the concept of:", Options: []string{"Energy", "Entropy", "Enthalpy", "Equilibrium"}, CorrectAnswer: 1, Explanation: "The Second Law of Thermodynamics introduces the concept of entropy, which is a measure of disorder or randomness in a system."},
				{ID: 5, Text: "In an adiabatic process:", Options: []string{"Temperature remains constant", "Pressure remains constant", "No heat is transferred", "Volume remains constant"}, CorrectAnswer: 2, Explanation: "An adiabatic process is one in which no heat is transferred between the system and its surroundings."},
			},
		},
		{
			ID:          "chemistry-periodic-table",
			Title:       "The Periodic Table",
			Description: "Test your knowledge of the periodic table and element properties",
			Subject:     SubjectChemistry,
			Topic:       "Periodic Table",
			Chapter:     "Element Classification",
			Difficulty:  DifficultyBeginner,
			Questions: []Question{
				{ID: 1, Text: "Who is credited with creating the modern periodic table?", Options: []string{"Antoine Lavoisier", "John Dalton", "Dmitri Mendeleev", "Henry Moseley"}, CorrectAnswer: 2, Explanation: "Dmitri Mendeleev is credited with creating the first widely recognized periodic table in 1869, arranging elements by atomic weight and chemical properties."},
				{ID: 2, Text: "What property is used to arrange elements in the modern periodic table?", Options: []string{"Atomic mass", "Atomic number", "Electron configuration", "Chemical reactivity"}, CorrectAnswer: 1, Explanation: "The modern periodic table arranges elements by atomic number (number of protons), which increases as you move from left to right across the table."},
				{ID: 3, Text: "Which group in the periodic table contains the noble gases?", Options: []string{"Group 1", "Group 7", "Group 8", "Group 18"}, CorrectAnswer: 3, Explanation: "The noble gases are found in Group 18 (formerly Group 8A or Group 0) of the periodic table. They are characterized by their full valence electron shells and low reactivity."},
				{ID: 4, Text: "Which of these is an alkali metal?", Options: []string{"Calcium", "Aluminum", "Sodium", "Chlorine"}, CorrectAnswer: 2, Explanation: "Sodium (Na) is an alkali metal found in Group 1 of the periodic table. Alkali metals are highly reactive metals with one electron in their outer shell."},
				{ID: 5, Text: "As you move from left to right across a period, what generally happens to the atomic radius?", Options: []string{"Increases", "Decreases", "Remains the same", "Increases then decreases"}, CorrectAnswer: 1, Explanation: "Atomic radius generally decreases as you move from left to right across a period. This is because the increasing nuclear charge pulls the electrons more tightly toward the nucleus."},
			},
		},
		{
			ID:          "math-calculus-derivatives",
			Title:       "Derivatives in Calculus",
			Description: "Test your understanding of derivatives and differentiation",
			Subject:     SubjectMath,
			Topic:       "Calculus",
			Chapter:     "Derivatives",
			Difficulty:  DifficultyAdvanced,
			Questions: []Question{
				{ID: 1, Text: "What is the derivative of f(x) = x²?", Options: []string{"f'(x) = x", "f'(x) = 2x", "f'(x) = 2", "f'(x) = x²"}, CorrectAnswer: 1, Explanation: "Using the power rule for differentiation, if f(x) = x^n, then f'(x) = n·x^(n-1). For f(x) = x², n = 2, so f'(x) = 2·x^(2-1) = 2x."},
				{ID: 2, Text: "What is the derivative of sin(x)?", Options: []string{"cos(x)", "-sin(x)", "-cos(x)", "tan(x)"}, CorrectAnswer: 0, Explanation: "The derivative of sin(x) is cos(x). This is one of the fundamental derivative rules in trigonometry."},
				{ID: 3, Text: "If f(x) = e^x, what is f'(x)?", Options: []string{"e^x", "x·e^x", "e^(x-1)", "1"}, CorrectAnswer: 0, Explanation: "The exponential function e^x is unique because it is its own derivative: if f(x) = e^x, then f'(x) = e^x."},
				{ID: 4, Text: "What is the derivative of ln(x)?", Options: []string{"1/x", "ln(x)/x", "x·ln(x)", "1/ln(x)"}, CorrectAnswer: 0, Explanation: "The derivative of the natural logarithm function ln(x) is 1/x for x > 0."},
				{ID: 5, Text: "Using the chain rule, what is the derivative of f(x) = sin(x²)?", Options: []string{"cos(x²)", "2x·cos(x²)", "2sin(x)·cos(x)", "2x·sin(x)"}, CorrectAnswer: 1, Explanation: "Using the chain rule, if f(x) = sin(g(x)) where g(x) = x², then f'(x) = cos(g(x))·g'(x) = cos(x²)·2x = 2x·cos(x²)."},
			},
		},
	}
}
