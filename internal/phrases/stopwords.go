package phrases

// stopwords holds function words plus resume-boilerplate words that carry no
// signal in a job description.
var stopwords = map[string]struct{}{
	"using": {}, "with": {}, "and": {}, "the": {}, "for": {},
	"from": {}, "that": {}, "are": {}, "have": {}, "has": {},
	"will": {}, "would": {}, "should": {}, "can": {}, "may": {},
	"experience": {}, "experienced": {}, "years": {}, "year": {},
	"skills": {}, "skill": {}, "ability": {}, "abilities": {},
	"work": {}, "works": {}, "working": {}, "used": {}, "use": {},
	"apply": {}, "applied": {}, "technologies": {},
}
