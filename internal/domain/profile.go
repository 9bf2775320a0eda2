package domain

// Profile names a convention profile. The platform's two guide variants
// contradict each other on variable prefixes and interruption handling, so
// the affected rules flip per profile instead of guessing.
type Profile string

const (
	// ProfileClassic follows the published import behavior: the "init:"
	// variable prefix and interruptionPolicy blocks are rejected.
	ProfileClassic Profile = "classic"

	// ProfileModern follows the newer authoring guide: the "init:" prefix
	// is required and Questions declare an interruptionPolicy.
	ProfileModern Profile = "modern"
)

// ValidProfiles lists every recognized profile.
var ValidProfiles = []Profile{ProfileClassic, ProfileModern}

// DefaultProfile applies when no profile is configured.
const DefaultProfile = ProfileClassic

// KnownActionKinds are the documented dialog action kinds.
var KnownActionKinds = []string{
	"AdaptiveDialog",
	"BeginDialog",
	"ConditionGroup",
	"EndDialog",
	"GotoAction",
	"Question",
	"SendActivity",
	"SetVariable",
}

// KnownEntityTypes are the documented entity types a Question can collect.
var KnownEntityTypes = []string{
	"boolean",
	"choice",
	"datetime",
	"duration",
	"email",
	"number",
	"phone",
	"string",
}

// IsKnownActionKind reports whether kind is documented.
func IsKnownActionKind(kind string) bool {
	for _, k := range KnownActionKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// IsKnownEntityType reports whether entity is a documented type.
func IsKnownEntityType(entity string) bool {
	for _, e := range KnownEntityTypes {
		if e == entity {
			return true
		}
	}
	return false
}
