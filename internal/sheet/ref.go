package sheet

// Ref identifies one cheatsheet. It is a closed sum type: the only
// implementations are CustomRef and DefaultRef.
type Ref interface {
	Provenance() Provenance
	// Slug is the remote slug or the custom sheet id.
	Slug() string
	Title() string
	isRef()
}

// CustomRef carries the full user-authored sheet.
type CustomRef struct {
	Sheet CustomCheatsheet
}

func (r CustomRef) Provenance() Provenance { return ProvenanceCustom }
func (r CustomRef) Slug() string           { return r.Sheet.ID }
func (r CustomRef) Title() string          { return r.Sheet.Title }
func (CustomRef) isRef()                   {}

// DefaultRef names a remote sheet by slug.
type DefaultRef struct {
	Name string
}

func (r DefaultRef) Provenance() Provenance { return ProvenanceDefault }
func (r DefaultRef) Slug() string           { return r.Name }
func (r DefaultRef) Title() string          { return r.Name }
func (DefaultRef) isRef()                   {}

// Key is the identity of a ref: provenance plus slug.
type Key struct {
	Provenance Provenance
	Slug       string
}

func KeyOf(r Ref) Key {
	return Key{Provenance: r.Provenance(), Slug: r.Slug()}
}

func (k Key) String() string {
	return string(k.Provenance) + ":" + k.Slug
}
