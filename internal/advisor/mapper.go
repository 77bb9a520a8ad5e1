package advisor

// Mapping is deliberately asymmetric: required scalar fields are enforced and
// produce a ShapeError, while absent arrays are treated as empty so a model
// that omits low-salience fields does not fail the whole call.

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

func asArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

func stringField(obj map[string]any, name string) (string, bool) {
	s, ok := obj[name].(string)
	return s, ok
}

func numberField(obj map[string]any, name string) (float64, bool) {
	n, ok := obj[name].(float64)
	return n, ok
}

// optString reads a string field, tolerating absence or a wrong kind.
func optString(obj map[string]any, name string) string {
	s, _ := stringField(obj, name)
	return s
}

func optStrings(obj map[string]any, name string) []string {
	out := []string{}
	arr, ok := asArray(obj[name])
	if !ok {
		return out
	}
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func optObjects(obj map[string]any, name string) []map[string]any {
	out := []map[string]any{}
	arr, ok := asArray(obj[name])
	if !ok {
		return out
	}
	for _, item := range arr {
		if o, ok := asObject(item); ok {
			out = append(out, o)
		}
	}
	return out
}

// mapSemesterPlans accepts either an array of semester objects or a single
// bare semester object, which is wrapped into a one-element list.
func mapSemesterPlans(v any) ([]SemesterPlan, error) {
	entries, ok := asArray(v)
	if !ok {
		obj, ok := asObject(v)
		if !ok {
			return nil, &ShapeError{Kind: KindSemesterPlan, Field: "semesterPlan", Want: "array"}
		}
		entries = []any{obj}
	}

	plans := make([]SemesterPlan, 0, len(entries))
	for _, entry := range entries {
		obj, ok := asObject(entry)
		if !ok {
			return nil, &ShapeError{Kind: KindSemesterPlan, Field: "semester entry", Want: "object"}
		}
		plan, err := mapSemesterPlan(obj)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func mapSemesterPlan(obj map[string]any) (SemesterPlan, error) {
	semester, ok := numberField(obj, "semester")
	if !ok {
		return SemesterPlan{}, &ShapeError{Kind: KindSemesterPlan, Field: "semester", Want: "number"}
	}

	plan := SemesterPlan{
		Semester:       int(semester),
		Courses:        []Course{},
		Certifications: []Certification{},
		Projects:       []Project{},
		ResearchPapers: []ResearchPaper{},
	}
	for _, c := range optObjects(obj, "courses") {
		plan.Courses = append(plan.Courses, Course{Title: optString(c, "title"), Link: optString(c, "link")})
	}
	for _, c := range optObjects(obj, "certifications") {
		plan.Certifications = append(plan.Certifications, Certification{
			Title:      optString(c, "title"),
			Platform:   optString(c, "platform"),
			Difficulty: optString(c, "difficulty"),
		})
	}
	for _, p := range optObjects(obj, "projects") {
		plan.Projects = append(plan.Projects, mapProjectLenient(p))
	}
	for _, r := range optObjects(obj, "researchPapers") {
		plan.ResearchPapers = append(plan.ResearchPapers, ResearchPaper{
			Title:    optString(r, "title"),
			Link:     optString(r, "link"),
			Abstract: optString(r, "abstract"),
		})
	}
	return plan, nil
}

// mapProjectLenient maps a nested project entry without enforcing required
// fields; enforcement only applies at the top level of the requested shape.
func mapProjectLenient(obj map[string]any) Project {
	semester, _ := numberField(obj, "semester")
	return Project{
		ID:          optString(obj, "id"),
		Title:       optString(obj, "title"),
		Description: optString(obj, "description"),
		Difficulty:  optString(obj, "difficulty"),
		Semester:    int(semester),
		Steps:       optStrings(obj, "steps"),
	}
}

func mapProject(v any) (Project, error) {
	obj, ok := asObject(v)
	if !ok {
		return Project{}, &ShapeError{Kind: KindProjectDetails, Field: "project", Want: "object"}
	}
	if _, ok := stringField(obj, "title"); !ok {
		return Project{}, &ShapeError{Kind: KindProjectDetails, Field: "title", Want: "string"}
	}
	return mapProjectLenient(obj), nil
}

func mapRepoStructure(v any) (RepoStructure, error) {
	obj, ok := asObject(v)
	if !ok {
		return RepoStructure{}, &ShapeError{Kind: KindRepoStructure, Field: "repoStructure", Want: "object"}
	}
	out := RepoStructure{Folders: optStrings(obj, "folders"), Files: []RepoFile{}}
	for _, f := range optObjects(obj, "files") {
		out.Files = append(out.Files, RepoFile{Name: optString(f, "name"), Content: optString(f, "content")})
	}
	return out, nil
}

func mapSuggestions(v any) ([]string, error) {
	arr, ok := asArray(v)
	if !ok {
		return nil, &ShapeError{Kind: KindNoteSuggestions, Field: "suggestions", Want: "array"}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, &ShapeError{Kind: KindNoteSuggestions, Field: "suggestions", Want: "array of strings"}
		}
		out = append(out, s)
	}
	return out, nil
}

func mapCourseRecommendations(v any) (CourseRecommendations, error) {
	obj, ok := asObject(v)
	if !ok {
		return CourseRecommendations{}, &ShapeError{Kind: KindCourseRecommendations, Field: "recommendations", Want: "object"}
	}
	studyPlan, ok := stringField(obj, "studyPlan")
	if !ok {
		return CourseRecommendations{}, &ShapeError{Kind: KindCourseRecommendations, Field: "studyPlan", Want: "string"}
	}
	return CourseRecommendations{
		StudyPlan:      studyPlan,
		Certifications: optStrings(obj, "certifications"),
		ProjectIdeas:   optStrings(obj, "projectIdeas"),
	}, nil
}
