package service

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const promptTemplate = `You are a top-tier personal trainer specializing in fitness and muscle development. Your task is to analyze the following fitness profile and create a highly personalized and detailed fitness plan for the user to achieve their goal of getting a six-pack (abs). The plan should include:
1. A comprehensive workout routine, including the type of exercises, sets, reps, rest intervals, and any required adjustments based on the user's fitness level.
2. Intensity recommendations based on current performance metrics and goals, such as increasing strength, endurance, and fat loss.
3. Personalized recovery strategies, including sleep quality, rest days, and suggestions for minimizing soreness.
4. Additional dietary and nutrition advice tailored to support muscle definition and fat reduction.
5. Motivation and tips for consistency, staying positive, and tracking progress.
6. Ensure the plan is sustainable, easy to follow, and structured to avoid injury and burnout.

Here's the user profile:
%s

Generate a complete plan with the following in mind:
- Focus on the user's goal of achieving a six-pack.
- Take into account the user's current fitness level and workout history.
- Provide a balanced approach to training and recovery.
- Include clear and actionable steps for every part of the plan.
`

// IndentUserData pretty-prints a JSON document with two-space indentation, keeping key
// order as submitted. Input that is not valid JSON is returned trimmed but otherwise as is.
func IndentUserData(userData []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(userData), "", "  "); err != nil {
		return string(bytes.TrimSpace(userData))
	}
	return buf.String()
}

// ComposePrompt embeds the user data into the trainer prompt. It accepts any JSON value
// and never fails; judging a thin or odd profile is left to the model.
func ComposePrompt(userData []byte) string {
	return fmt.Sprintf(promptTemplate, IndentUserData(userData))
}
