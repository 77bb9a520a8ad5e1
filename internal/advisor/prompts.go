package advisor

import (
	"fmt"
	"strings"
)

// Every prompt that expects structured output embeds a fully worked example
// payload; the examples double as fixtures for the round-trip tests. Prose
// prompts instruct the model to skip markdown entirely.

const semesterPlanExample = `{
  "semester": 1,
  "courses": [
    { "title": "Introduction to Computer Science", "link": "#" },
    { "title": "Calculus I", "link": "#" }
  ],
  "certifications": [
    { "title": "Python for Everybody", "platform": "Coursera", "difficulty": "Beginner" }
  ],
  "projects": [
    {
      "id": "project-1-1",
      "title": "Personal Portfolio Website",
      "description": "Create a personal portfolio website to showcase your skills and projects.",
      "difficulty": "Easy",
      "semester": 1,
      "steps": ["Plan the layout", "Write the HTML and CSS", "Add JavaScript for interactivity", "Deploy the website"]
    }
  ],
  "researchPapers": []
}`

const projectDetailsExample = `{
  "id": "project-1-1",
  "title": "Personal Portfolio Website",
  "description": "Create a personal portfolio website to showcase your skills and projects.",
  "difficulty": "Easy",
  "semester": 1,
  "steps": ["Plan the layout", "Write the HTML and CSS", "Add JavaScript for interactivity", "Deploy the website"]
}`

const repoStructureExample = `{
  "folders": ["src", "src/components", "public", "tests"],
  "files": [
    { "name": "README.md", "content": "# Personal Portfolio Website\n\nA portfolio site built from scratch." },
    { "name": "src/index.html", "content": "<!DOCTYPE html>\n<html></html>" }
  ]
}`

const noteSuggestionsExample = `["Review the lecture slides on recursion", "Add an example for tail calls", "Link this note to the algorithms course"]`

const courseRecommendationsExample = `{
  "studyPlan": "Week 1: Read chapters 1-2 and solve the warm-up exercises. Week 2: Build the first mini project.",
  "certifications": ["Python for Everybody (Coursera)"],
  "projectIdeas": ["Build a flashcard trainer for the course material"]
}`

func semesterPlanPrompt(p UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a semester plan for a %s student interested in %s.\n", p.AcademicLevel, strings.Join(p.Interests, ", "))
	if p.CareerGoals != "" {
		fmt.Fprintf(&b, "Their career goal is: %s. Current skills: %s. They can study %d hours per week.\n", p.CareerGoals, p.CurrentSkills, p.WeeklyStudyHours)
	}
	b.WriteString(`The output MUST be a valid JSON array of objects. Do not include any other text or markdown.
Each object in the array represents a semester and must have the following properties:
- "semester": number
- "courses": array of objects with "title" (string) and "link" (string, use "#" as a placeholder)
- "certifications": array of objects with "title" (string), "platform" (string), and "difficulty" (string)
- "projects": array of objects with "id" (string), "title" (string), "description" (string), "difficulty" (string), "semester" (number), and "steps" (array of strings)
- "researchPapers": array of objects with "title" (string), "link" (string, use "#" as a placeholder), and "abstract" (string)

Example of a single semester object:
`)
	b.WriteString(semesterPlanExample)
	return b.String()
}

func projectDetailsPrompt(p Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate detailed project information for the project %q (id %s).\n", p.Title, p.ID)
	if p.Description != "" {
		fmt.Fprintf(&b, "Current description: %s\n", p.Description)
	}
	b.WriteString(`Respond with only a valid JSON object, no other text or markdown, with properties:
"id" (string), "title" (string), "description" (string), "difficulty" (one of "Easy", "Medium", "Hard"), "semester" (number), "steps" (array of strings describing concrete implementation steps).

Example:
`)
	b.WriteString(projectDetailsExample)
	return b.String()
}

func repoStructurePrompt(p Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a GitHub repository structure for the project %q.\n", p.Title)
	if len(p.Steps) > 0 {
		fmt.Fprintf(&b, "Planned steps: %s\n", strings.Join(p.Steps, "; "))
	}
	b.WriteString(`Respond with only a valid JSON object, no other text or markdown, with properties:
"folders" (array of folder path strings) and "files" (array of objects with "name" and "content" strings).

Example:
`)
	b.WriteString(repoStructureExample)
	return b.String()
}

func noteSuggestionsPrompt(noteText string) string {
	var b strings.Builder
	b.WriteString("Generate improvement suggestions for the following study notes:\n")
	b.WriteString(noteText)
	b.WriteString(`

Respond with only a valid JSON array of suggestion strings, no other text or markdown.

Example:
`)
	b.WriteString(noteSuggestionsExample)
	return b.String()
}

func noteSummaryPrompt(noteText string) string {
	return "Summarize the following study notes in a few sentences. Respond with plain prose only: no markdown, no formatting, no preamble.\n\n" + noteText
}

func progressNudgePrompt(p UserProfile) string {
	return fmt.Sprintf(
		"Generate a short motivational nudge for %s, a %s student working towards: %s. Respond with plain prose only: no markdown, no formatting, no preamble.",
		p.Name, p.AcademicLevel, p.CareerGoals,
	)
}

func courseRecommendationsPrompt(title, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate study recommendations for the course %q.\n", title)
	if description != "" {
		fmt.Fprintf(&b, "Course description: %s\n", description)
	}
	b.WriteString(`Respond with only a valid JSON object, no other text or markdown, with properties:
"studyPlan" (a string of week-by-week guidance, each week prefixed with "Week N:"), "certifications" (array of certification name strings), "projectIdeas" (array of project idea strings).

Example:
`)
	b.WriteString(courseRecommendationsExample)
	return b.String()
}
