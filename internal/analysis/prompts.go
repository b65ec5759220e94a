package analysis

// Built-in prompt bodies, used when no template files are configured. Both
// demand a bare JSON object; the structured parser still tolerates fenced
// output from models that ignore the instruction.
const defaultDailyPrompt = `You are an expert IBS Wellness Assistant. Analyze the following daily log and return a Valid JSON object.
Do NOT return markdown formatting like ` + "```json ... ```" + `. Just the raw JSON object.

Date: {{.Date}}
Data:
{{.Data}}

Required JSON Structure:
{
    "wellness_score": <int 1-100 based on overall health>,
    "summary": "<concise summary of the day>",
    "triggers": ["<potential trigger 1>", "<potential trigger 2>"],
    "recommendations": ["<actionable tip 1>", "<actionable tip 2>"]
}
`

const defaultWeeklyPrompt = `You are an expert IBS Wellness Assistant. Analyze the following weekly data and return a Valid JSON object.
Do NOT return markdown formatting like ` + "```json ... ```" + `. Just the raw JSON object.

Data:
{{.Data}}

Required JSON Structure:
{
    "wellness_score": <int 1-100 average wellness>,
    "trend_analysis": "<analysis of symptom/lifestyle trends>",
    "identified_triggers": [
        {"trigger": "<trigger name>", "confidence": "<High/Medium/Low>"}
    ],
    "recommendations": ["<strategic recommendation 1>", "<strategic recommendation 2>"]
}
`
