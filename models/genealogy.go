package models

// Gender of a genealogy profile.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// RelationshipType is the kind of edge between two profiles.
type RelationshipType string

const (
	ParentOf         RelationshipType = "PARENT_OF"
	AdoptiveParentOf RelationshipType = "ADOPTIVE_PARENT_OF"
	SpouseOf         RelationshipType = "SPOUSE_OF"
	SiblingOf        RelationshipType = "SIBLING_OF"
)

// Valid reports whether t is a known relationship type.
func (t RelationshipType) Valid() bool {
	switch t {
	case ParentOf, AdoptiveParentOf, SpouseOf, SiblingOf:
		return true
	}
	return false
}

// PersonProfile is a node of the family tree.
type PersonProfile struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Gender         Gender `json:"gender"`
	BirthDate      string `json:"birthDate"`
	DeathDate      string `json:"deathDate,omitempty"`
	BirthPlace     string `json:"birthPlace,omitempty"`
	Biography      string `json:"biography"`
	PhotoURL       string `json:"photoUrl"`
	IsLinkedToUser bool   `json:"isLinkedToUser"`
}

// Relationship is a directed edge PersonA -> PersonB.
type Relationship struct {
	ID        string           `json:"id"`
	PersonAID string           `json:"personAId"`
	PersonBID string           `json:"personBId"`
	Type      RelationshipType `json:"type"`
}

// TreeVault is the vault summary embedded in tree data.
type TreeVault struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FamilyName  string `json:"familyName"`
	MemberCount int    `json:"memberCount"`
}

// TreeData is the whole family tree of a vault.
type TreeData struct {
	Profiles      []PersonProfile `json:"profiles"`
	Relationships []Relationship  `json:"relationships"`
	Vault         *TreeVault      `json:"vault"`
}

// MediaTag links a person to a media item, optionally at a face position.
type MediaTag struct {
	ID              string             `json:"id"`
	MediaID         string             `json:"mediaId"`
	PersonID        string             `json:"personId"`
	PersonName      string             `json:"personName"`
	FaceCoordinates map[string]float64 `json:"faceCoordinates,omitempty"`
}

// ProfileRequest creates or updates a profile. On update, nil fields are not
// sent; an empty non-nil date clears it.
type ProfileRequest struct {
	VaultID      string
	FullName     *string
	BirthDate    *string
	BirthPlace   *string
	DeathDate    *string
	Bio          *string
	ProfilePhoto *UploadFile
}

// CreateRelationshipRequest adds an edge to the tree.
type CreateRelationshipRequest struct {
	FromPerson       string           `json:"fromPerson"`
	ToPerson         string           `json:"toPerson"`
	RelationshipType RelationshipType `json:"relationshipType"`
}

// CreateMediaTagRequest tags a person on a media item.
type CreateMediaTagRequest struct {
	MediaItem       string             `json:"mediaItem"`
	Person          string             `json:"person"`
	FaceCoordinates map[string]float64 `json:"faceCoordinates,omitempty"`
}
