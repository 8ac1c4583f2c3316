package domain

import "fmt"

const hintPromptTemplate = `Give me ONE word that is loosely related to "%[1]s" and in the SAME CATEGORY. The word should help someone guess what general category or type of thing it is without revealing the exact word.

Examples:
- "Pizza" → "Italian", "Restaurant", "Cheese"
- "Cashier" → "Retail", "Store", "Customer"
- "Scissors" → "Cutting", "Sharp", "Paper"
- "Dog" → "Animal", "Companion", "Furry"
- "Seal" → "Ocean", "Marine", "Swim"
- "Teacher" → "Guide", "Course", "Learning"
- "Apple" → "Fruit", "Sweet", "Orchard"

IMPORTANT: The hint MUST be loosely related to the same type/category. Do NOT give unrelated words, but also do not give overly specific words that reveal the secret word.

Now give me ONLY ONE word for "%[1]s":`

// BuildHintPrompt substitutes secretWord into the few-shot hint prompt.
func BuildHintPrompt(secretWord string) string {
	return fmt.Sprintf(hintPromptTemplate, secretWord)
}
