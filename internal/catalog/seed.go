package catalog

import "anglolingua/internal/exercise"

// SeedLessons returns the built-in AngloLingua course: English for
// Polish speakers, levels A1-A2. The first two lessons are inside the
// free tier; the rest require a premium subscription.
func SeedLessons() []Lesson {
	return []Lesson{
		{
			ID:               "lesson-1",
			Title:            "Greetings and Introductions (Pozdrowienia i przedstawianie się)",
			Level:            "A1",
			Order:            1,
			EstimatedMinutes: 20,
			Tags:             []string{"basics", "conversation"},
			Content: Content{
				Introduction: "Welcome to your first English lesson! Today, we will learn basic greetings and how to introduce yourself and others. Witamy na pierwszej lekcji angielskiego! Dziś nauczymy się podstawowych zwrotów grzecznościowych oraz jak przedstawiać siebie i innych.",
				Vocabulary: []VocabularyItem{
					{Polish: "Cześć", English: "Hello / Hi", Example: "Hello, how are you?"},
					{Polish: "Dzień dobry (rano)", English: "Good morning", Example: "Good morning, teacher!"},
					{Polish: "Dzień dobry (po południu)", English: "Good afternoon"},
					{Polish: "Dobry wieczór", English: "Good evening"},
					{Polish: "Do widzenia", English: "Goodbye / Bye", Example: "Bye! See you tomorrow."},
					{Polish: "Nazywam się...", English: "My name is...", Example: "My name is Anna."},
					{Polish: "Jak się masz?", English: "How are you?", Example: "Hi John, how are you?"},
					{Polish: "Dziękuję", English: "Thank you", Example: "Thank you for your help."},
					{Polish: "Proszę (prosząc o coś)", English: "Please", Example: "Can I have some water, please?"},
					{Polish: "Przepraszam", English: "Excuse me / Sorry"},
				},
				Grammar: []GrammarRule{
					{
						Title:       `The verb "to be" (am, is, are) - Czasownik "być"`,
						Explanation: `We use "to be" to talk about names, feelings, and states. Używamy "to be" do mówienia o imionach, uczuciach i stanach.`,
						Examples:    []string{"I am happy.", "You are a student.", "She is Polish.", "My name is Piotr."},
					},
				},
				Dialogue: &Dialogue{
					Title:        "At a Cafe (W kawiarni)",
					Participants: []string{"Anna", "Barista"},
					Lines: []DialogueLine{
						{Speaker: "Anna", Line: "Hello!"},
						{Speaker: "Barista", Line: "Good morning! How can I help you?"},
						{Speaker: "Anna", Line: "Can I have a coffee, please?"},
						{Speaker: "Barista", Line: "Sure. Anything else?"},
						{Speaker: "Anna", Line: "No, thank you."},
					},
				},
				Summary: "Great job! You've learned essential greetings and introductions. Practice them with friends! Świetna robota! Nauczyłeś/aś się podstawowych zwrotów grzecznościowych. Ćwicz je ze znajomymi!",
			},
			Homework: []exercise.Exercise{
				{
					ID:     "hw1-1",
					Kind:   exercise.KindMultipleChoice,
					Prompt: `How do you say "Dzień dobry (rano)" in English?`,
					Options: []exercise.Option{
						{ID: "opt1", Text: "Good evening"},
						{ID: "opt2", Text: "Good morning"},
						{ID: "opt3", Text: "Good afternoon"},
					},
					CorrectOption: "opt2",
					Explanation:   `"Good morning" is used to greet someone in the morning.`,
				},
				{
					ID:          "hw1-2",
					Kind:        exercise.KindFillInBlanks,
					Prompt:      "My name ___ Maria.",
					Blanks:      []string{"is"},
					Explanation: `With "My name", we use "is".`,
				},
			},
		},
		{
			ID:               "lesson-2",
			Title:            "Numbers and Colors (Liczby i kolory)",
			Level:            "A1",
			Order:            2,
			EstimatedMinutes: 25,
			Tags:             []string{"basics", "vocabulary"},
			Content: Content{
				Introduction: "This lesson covers numbers 1-20 and basic colors. Ta lekcja obejmuje liczby 1-20 oraz podstawowe kolory.",
				Vocabulary: []VocabularyItem{
					{Polish: "Jeden", English: "One"},
					{Polish: "Dwa", English: "Two"},
					{Polish: "Trzy", English: "Three"},
					{Polish: "Czerwony", English: "Red"},
					{Polish: "Niebieski", English: "Blue"},
					{Polish: "Zielony", English: "Green"},
					{Polish: "Żółty", English: "Yellow"},
					{Polish: "Czarny", English: "Black"},
					{Polish: "Biały", English: "White"},
				},
				Grammar: []GrammarRule{
					{
						Title:       "Plural Nouns (Liczba mnoga rzeczowników)",
						Explanation: "To make most nouns plural, add -s. Aby utworzyć liczbę mnogą większości rzeczowników, dodaj -s.",
						Examples:    []string{"One cat, two cats.", "One book, three books."},
					},
				},
				Summary: "Now you can count and name colors! Teraz potrafisz liczyć i nazywać kolory!",
			},
			Homework: []exercise.Exercise{
				{
					ID:     "hw2-1",
					Kind:   exercise.KindMultipleChoice,
					Prompt: `What color is "niebieski"?`,
					Options: []exercise.Option{
						{ID: "opt1", Text: "Red"},
						{ID: "opt2", Text: "Blue"},
						{ID: "opt3", Text: "Green"},
					},
					CorrectOption: "opt2",
				},
				{
					ID:          "hw2-2",
					Kind:        exercise.KindFillInBlanks,
					Prompt:      "I have two ___ (książka).",
					Blanks:      []string{"books"},
					Explanation: `The plural of "book" is "books".`,
				},
			},
		},
		{
			ID:               "lesson-3",
			Title:            "Talking About Family (Rozmowa o rodzinie)",
			Level:            "A2",
			Order:            3,
			EstimatedMinutes: 30,
			Tags:             []string{"family", "conversation", "premium"},
			Content: Content{
				Introduction: "Learn vocabulary related to family members and how to describe your family. Naucz się słownictwa związanego z członkami rodziny i jak opisywać swoją rodzinę.",
				Vocabulary: []VocabularyItem{
					{Polish: "Matka", English: "Mother"},
					{Polish: "Ojciec", English: "Father"},
					{Polish: "Brat", English: "Brother"},
					{Polish: "Siostra", English: "Sister"},
					{Polish: "Syn", English: "Son"},
					{Polish: "Córka", English: "Daughter"},
				},
				Grammar: []GrammarRule{
					{
						Title:       "Possessive Adjectives (Przymiotniki dzierżawcze)",
						Explanation: "Use my, your, his, her, its, our, their to show possession. Użyj my, your, his, her, its, our, their, aby pokazać przynależność.",
						Examples:    []string{"My mother is a doctor.", "His brother is tall."},
					},
				},
				Summary: "You can now talk about your family! Możesz teraz rozmawiać o swojej rodzinie!",
			},
			Homework: []exercise.Exercise{
				{
					ID:     "hw3-1",
					Kind:   exercise.KindFillInBlanks,
					Prompt: "This is ___ (mój) sister.",
					Blanks: []string{"my"},
				},
			},
		},
		{
			ID:               "lesson-4",
			Title:            "Ordering Food (Zamawianie jedzenia)",
			Level:            "A2",
			Order:            4,
			EstimatedMinutes: 35,
			Tags:             []string{"food", "travel", "premium"},
			Content: Content{
				Introduction: "Learn how to order food in a restaurant. Naucz się, jak zamawiać jedzenie w restauracji.",
				Vocabulary: []VocabularyItem{
					{Polish: "Chciałbym/Chciałabym...", English: "I would like..."},
					{Polish: "Poproszę...", English: "Can I have... / I'll take..."},
					{Polish: "Rachunek", English: "Bill / Check"},
					{Polish: "Smacznego", English: "Enjoy your meal / Bon appétit"},
				},
				Grammar: []GrammarRule{
					{
						Title:       `Using "Can I...?" and "Could I...?" for requests (Używanie "Can I...?" i "Could I...?" do próśb)`,
						Explanation: `"Could I...?" is generally more polite than "Can I...?". "Could I...?" jest ogólnie bardziej uprzejme niż "Can I...?".`,
						Examples:    []string{"Can I have the menu, please?", "Could I have some water?"},
					},
				},
				Summary: "You are ready to order your favorite meal in English! Jesteś gotowy/a zamówić swoje ulubione danie po angielsku!",
			},
			Homework: []exercise.Exercise{
				{
					ID:     "hw4-1",
					Kind:   exercise.KindMultipleChoice,
					Prompt: "What is a polite way to ask for the bill?",
					Options: []exercise.Option{
						{ID: "opt1", Text: "Give me the bill!"},
						{ID: "opt2", Text: "Could I have the bill, please?"},
						{ID: "opt3", Text: "Where is the bill?"},
					},
					CorrectOption: "opt2",
				},
			},
		},
		{
			ID:               "lesson-5",
			Title:            "Daily Routines (Codzienne czynności)",
			Level:            "A2",
			Order:            5,
			EstimatedMinutes: 30,
			Tags:             []string{"daily life", "verbs", "premium"},
			Content: Content{
				Introduction: "Talk about your daily activities using Present Simple tense. Opowiadaj o swoich codziennych czynnościach używając czasu Present Simple.",
				Vocabulary: []VocabularyItem{
					{Polish: "Wstawać", English: "Wake up / Get up"},
					{Polish: "Jeść śniadanie", English: "Eat breakfast"},
					{Polish: "Iść do pracy/szkoły", English: "Go to work/school"},
					{Polish: "Oglądać telewizję", English: "Watch TV"},
					{Polish: "Iść spać", English: "Go to bed"},
				},
				Grammar: []GrammarRule{
					{
						Title:       "Present Simple Tense (Czas teraźniejszy prosty)",
						Explanation: "Used for habits, routines, and general truths. Używany do opisywania nawyków, rutynowych czynności i ogólnych prawd.",
						Examples:    []string{"I wake up at 7 AM.", "She works in an office.", "They play football on Saturdays."},
					},
				},
				Summary: "You can now describe your typical day in English. Możesz teraz opisać swój typowy dzień po angielsku.",
			},
			Homework: []exercise.Exercise{
				{
					ID:          "hw5-1",
					Kind:        exercise.KindFillInBlanks,
					Prompt:      "He ___ (oglądać) TV in the evening.",
					Blanks:      []string{"watches"},
					Explanation: "For he/she/it in Present Simple, add -s or -es to the verb.",
				},
			},
		},
	}
}
