package prompt

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// maxStoryLength caps how much of a story is embedded in a prompt, roughly
// 4000 tokens for gpt-3.5-turbo. Truncation applies only to the prompt copy;
// the stored story is never touched.
const maxStoryLength = 8000

const truncationMarker = "..."

const storyPlaceholder = "{STORY_TEXT}"

// SystemMessage is the fixed system turn sent with every analysis request.
const SystemMessage = "You are a helpful storytelling coach who extracts key story elements. Always respond with valid JSON."

// storyAnalysisTemplate instructs the model to extract the eight structured
// story elements. Unclear fields must use the literal "Unclear" sentinel; the
// normalizer collapses it to "" downstream.
const storyAnalysisTemplate = `You are a storytelling coach. Analyze this story and extract the key elements.

Rules:
- Do not invent facts. Only extract what's explicitly in the story.
- If a field is unclear or missing, respond with "Unclear" (not an empty string).
- Keep language conversational, not academic.
- Be concise - each field should be 1-2 sentences max.
- Return valid JSON only, no markdown.

Story:
{STORY_TEXT}

Respond with JSON only:
{
  "characters": ["name1", "name2"],
  "hook": "...",
  "beginning": "...",
  "middle": "...",
  "end": "...",
  "outcome": "...",
  "lesson_or_takeaway": "...",
  "turning_point": "..."
}`

// storyCleanupTemplate produces a cleaned-up version of the story text. The
// reply is plain text, not JSON.
const storyCleanupTemplate = `You are an editor helping someone tell their story better.

Rules:
- Preserve the original voice and all key facts
- Fix grammar, spelling, and punctuation
- Improve flow and clarity without changing meaning
- Keep the length similar to the original
- Don't add details that weren't in the original

Original story:
{STORY_TEXT}

Return only the cleaned story text, no explanations or markdown:`

// coachFeedbackTemplate asks for coaching notes on the story.
const coachFeedbackTemplate = `You are a storytelling coach reviewing a story.

Analyze for:
1. What could be cut (unnecessary words, repetition, tangents)
2. Vocabulary upgrades (simpler words that could be stronger)
3. Pacing suggestions (where to pause, slow down, speed up)
4. Stronger opening line suggestion
5. Callback ending suggestion (reference back to opening)

Story:
{STORY_TEXT}

Return valid JSON only:
{
  "what_to_cut": "...",
  "vocabulary_upgrades": [{"original": "...", "upgraded": "..."}],
  "pacing_notes": "...",
  "stronger_opening": "...",
  "callback_ending": "..."
}`

// truncate returns the first maxStoryLength characters of storyText with a
// truncation marker appended, or the text unchanged when it fits.
func truncate(storyText string) string {
	runes := []rune(storyText)
	if len(runes) <= maxStoryLength {
		return storyText
	}
	return string(runes[:maxStoryLength]) + truncationMarker
}

// FormatAnalysis builds the analysis prompt for the given story text.
// Deterministic, no I/O.
func FormatAnalysis(storyText string) string {
	return strings.Replace(storyAnalysisTemplate, storyPlaceholder, truncate(storyText), 1)
}

// FormatCleanup builds the cleanup prompt for the given story text.
func FormatCleanup(storyText string) string {
	return strings.Replace(storyCleanupTemplate, storyPlaceholder, truncate(storyText), 1)
}

// FormatCoach builds the coach-feedback prompt for the given story text.
func FormatCoach(storyText string) string {
	return strings.Replace(coachFeedbackTemplate, storyPlaceholder, truncate(storyText), 1)
}

// EstimateTokens counts prompt tokens with the model's tokenizer. Used for
// logging and as the usage fallback when the gateway omits usage info. Falls
// back to a bytes/4 heuristic for models tiktoken does not know.
func EstimateTokens(model, text string) int {
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return len(text) / 4
	}
	return len(tke.Encode(text, nil, nil))
}
