package dip

// RigidProject is the smell: the high-level module constructs its own
// concrete developers. There is no seam; staffing the project differently
// means editing it.
type RigidProject struct {
	Name string

	frontend FrontendDeveloper
	backend  BackendDeveloper
}

// NewRigidProject hard-wires the team.
func NewRigidProject(name string) *RigidProject {
	return &RigidProject{
		Name:     name,
		frontend: FrontendDeveloper{Name: "in-house frontend"},
		backend:  BackendDeveloper{Name: "in-house backend"},
	}
}

// Sprint always runs with the welded-in team.
func (p *RigidProject) Sprint() []Contribution {
	return []Contribution{
		p.frontend.Develop(),
		p.backend.Develop(),
	}
}
