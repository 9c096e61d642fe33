// Package record holds the student entry stored in the backing file and the
// selector used to address its numeric fields.
package record

// Header is the first line of every backing file. It is written once and
// never decoded into a Record.
const Header = "ID,Name,Sex,Age,Math,Chinese,English"

// Columns is the number of comma separated fields of a data line.
const Columns = 7

// Text limits, counted in characters after trimming.
const (
	MaxNameLen = 19
	MaxSexLen  = 9
)

// Record is one validated student entry. Values are copied around, a
// Record returned by the store is never modified afterwards.
type Record struct {
	Id      int     `json:"id"`
	Name    string  `json:"name"`
	Sex     string  `json:"sex"`
	Age     int     `json:"age"`
	Math    float64 `json:"math"`
	Chinese float64 `json:"chinese"`
	English float64 `json:"english"`
}
