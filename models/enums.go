package models

import (
	"fmt"
	"io"
	"strconv"
)

type Genre string

const (
	GenreMale   Genre = "MACHO"
	GenreFemale Genre = "HEMBRA"
	GenreChild  Genre = "CRIA"
)

var AllGenre = []Genre{GenreMale, GenreFemale, GenreChild}

func (e Genre) IsValid() bool {
	switch e {
	case GenreMale, GenreFemale, GenreChild:
		return true
	}
	return false
}

func (e Genre) String() string {
	return string(e)
}

func (e *Genre) UnmarshalGQL(v interface{}) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("enums must be strings")
	}

	*e = Genre(str)
	if !e.IsValid() {
		return fmt.Errorf("%s is not a valid GenreCuy", str)
	}
	return nil
}

func (e Genre) MarshalGQL(w io.Writer) {
	fmt.Fprint(w, strconv.Quote(e.String()))
}

// poolColumn is the pools column holding this genre's population.
func (e Genre) poolColumn() string {
	switch e {
	case GenreMale:
		return "male_population"
	case GenreFemale:
		return "female_population"
	default:
		return "children_population"
	}
}

func (e Genre) shedColumn() string {
	switch e {
	case GenreMale:
		return "male_number_cuys"
	case GenreFemale:
		return "female_number_cuys"
	default:
		return "children_number_cuys"
	}
}

// Operation types as stored in operations.type.
const (
	OperationQuery    = 0
	OperationMutation = 1
)
