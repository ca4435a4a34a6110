package models

type Identifier interface {
	GetId() int
}

// RelatedData belongs to the entity named by its reference id.
type RelatedData interface {
	Identifier
	GetReferenceId() int
}

func (obj User) GetId() int         { return obj.ID }
func (obj Role) GetId() int         { return obj.ID }
func (obj Operation) GetId() int    { return obj.ID }
func (obj Shed) GetId() int         { return obj.ID }
func (obj Pool) GetId() int         { return obj.ID }
func (obj Cuy) GetId() int          { return obj.ID }
func (obj Mobilization) GetId() int { return obj.ID }

func (obj CuyWeight) GetId() int          { return obj.ID }
func (obj CuyWeight) GetReferenceId() int { return obj.CuyId }

func (obj CuyDeath) GetId() int          { return obj.ID }
func (obj CuyDeath) GetReferenceId() int { return obj.CuyId }

func (obj CuySaca) GetId() int          { return obj.ID }
func (obj CuySaca) GetReferenceId() int { return obj.CuyId }
