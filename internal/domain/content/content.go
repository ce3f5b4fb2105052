package content

import (
	"context"
)

// ProjectRecord is one portfolio project as shown on the site. The id is
// assigned by the editing client; records carry no version or timestamp
// because the whole document is the unit of persistence.
type ProjectRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github"`
	Demo         string   `json:"demo"`
	Featured     bool     `json:"featured"`
	Visible      bool     `json:"visible"`
	Category     string   `json:"category"`
}

// ProjectsDocument is the sole persisted unit for projects. It is replaced
// wholesale on every save; there are no partial updates.
type ProjectsDocument struct {
	Projects []ProjectRecord `json:"projects"`
}

// ProfileKey identifies one of the fixed viewer personas.
type ProfileKey string

const (
	ProfileRecruiter ProfileKey = "recruiter"
	ProfileStudent   ProfileKey = "student"
	ProfileExplorer  ProfileKey = "explorer"
)

// SectionKey identifies a site section with a configurable background.
type SectionKey string

const (
	SectionAbout            SectionKey = "about"
	SectionSkills           SectionKey = "skills"
	SectionProjectsFeatured SectionKey = "projectsFeatured"
	SectionExperience       SectionKey = "experience"
	SectionContact          SectionKey = "contact"
)

var SectionKeys = []SectionKey{
	SectionAbout,
	SectionSkills,
	SectionProjectsFeatured,
	SectionExperience,
	SectionContact,
}

var ProfileKeys = []ProfileKey{ProfileRecruiter, ProfileStudent, ProfileExplorer}

// ProfileConfig holds the imagery for one viewer persona.
type ProfileConfig struct {
	Image         string                `json:"image"`
	BackgroundGif string                `json:"backgroundGif"`
	Backgrounds   map[SectionKey]string `json:"backgrounds"`
}

// MediaConfig is the global display configuration. It is never deleted,
// only overwritten.
type MediaConfig struct {
	ProfileImage string                       `json:"profileImage"`
	Profiles     map[ProfileKey]ProfileConfig `json:"profiles"`
}

// Storage medium labels reported to callers after a projects write.
const (
	MediumCloudinary = "cloudinary"
	MediumLocalFile  = "local-file"
)

// Store persists the two content documents. Both documents are replaced
// wholesale; there is no optimistic-concurrency token, so concurrent
// writers race and the last completed write wins. That is an accepted
// limitation of the single-operator admin panel, not something the store
// mitigates.
type Store interface {
	// ReadProjects returns the current projects document, or an empty
	// document when nothing is persisted or the read fails. Failures are
	// logged, never returned.
	ReadProjects(ctx context.Context) ProjectsDocument

	// WriteProjects replaces the projects document and reports which
	// medium held the write. An error is returned only when no medium
	// could take the document.
	WriteProjects(ctx context.Context, doc ProjectsDocument) (medium string, err error)

	// ReadMediaConfig returns the persisted media configuration, falling
	// back to the compiled-in default when nothing valid is persisted.
	ReadMediaConfig(ctx context.Context) MediaConfig

	// WriteMediaConfig overwrites the media configuration. Write failures
	// are logged and swallowed: the hosting filesystem may be read-only
	// in production, and callers must not assume success implies
	// durability.
	WriteMediaConfig(ctx context.Context, cfg MediaConfig)
}
