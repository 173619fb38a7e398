package assistant

import "fmt"

// Prompt wording is load-bearing: the RAG template's refusal phrasing is what
// the sufficiency judge and the user rely on when the context falls short.

const ragSystem = `You are a helpful assistant answering questions about a recipe. Use ONLY the recipe context below to answer. If the recipe does not contain enough information to answer the question, say clearly: "The recipe does not contain this information." Do not make up details.`

const webSystem = `You are a helpful assistant. The user asked a question about a recipe. The recipe context alone was not enough. Use the web search results below (and optionally the recipe context) to give a helpful, accurate answer. Cite sources when relevant.`

func ragPrompt(context, question string) string {
	return fmt.Sprintf(`Recipe context:
%s

User question: %s

Answer based only on the recipe context above. If the information is not in the recipe, say so.`, context, question)
}

func sufficiencyPrompt(question, answer string) string {
	return fmt.Sprintf(`Consider this question and answer pair about a recipe.

Question: %s

Answer: %s

Does the recipe context alone fully support this answer? Could the user have gotten this answer only from the recipe? Reply with exactly one word: YES or NO.`, question, answer)
}

func webPrompt(recipeContext, webResults, question string) string {
	return fmt.Sprintf(`Recipe context (may be partial):
%s

Web search results:
%s

User question: %s

Provide a comprehensive answer using the web search results above.`, recipeContext, webResults, question)
}
