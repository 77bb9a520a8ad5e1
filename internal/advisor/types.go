package advisor

// PromptKind identifies one of the supported generation requests.
type PromptKind string

const (
	KindSemesterPlan          PromptKind = "semester_plan"
	KindProjectDetails        PromptKind = "project_details"
	KindRepoStructure         PromptKind = "repo_structure"
	KindNoteSuggestions       PromptKind = "note_suggestions"
	KindNoteSummary           PromptKind = "note_summary"
	KindProgressNudge         PromptKind = "progress_nudge"
	KindCourseRecommendations PromptKind = "course_recommendations"
)

// UserProfile is the caller-supplied academic profile interpolated into
// planning prompts.
type UserProfile struct {
	Name             string   `json:"name"`
	AcademicLevel    string   `json:"academicLevel"`
	CareerGoals      string   `json:"careerGoals"`
	Interests        []string `json:"interests"`
	CurrentSkills    string   `json:"currentSkills"`
	WeeklyStudyHours int      `json:"weeklyStudyHours"`
}

type Course struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type Certification struct {
	Title      string `json:"title"`
	Platform   string `json:"platform"`
	Difficulty string `json:"difficulty"`
}

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Semester    int      `json:"semester"`
	Steps       []string `json:"steps"`
}

type ResearchPaper struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Abstract string `json:"abstract"`
}

// SemesterPlan is one semester of the generated study roadmap.
type SemesterPlan struct {
	Semester       int             `json:"semester"`
	Courses        []Course        `json:"courses"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	ResearchPapers []ResearchPaper `json:"researchPapers"`
}

type RepoFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// RepoStructure is a suggested repository skeleton for a project.
type RepoStructure struct {
	Folders []string   `json:"folders"`
	Files   []RepoFile `json:"files"`
}

// CourseRecommendations bundles the AI study aids shown on a course page.
type CourseRecommendations struct {
	StudyPlan      string   `json:"studyPlan"`
	Certifications []string `json:"certifications"`
	ProjectIdeas   []string `json:"projectIdeas"`
}
