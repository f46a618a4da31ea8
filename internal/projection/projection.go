package projection

import (
	"fmt"
	"strings"
)

// Record is one validated element of the provider's results array, or a
// validated request body.
type Record = map[string]any

// Person is the /random-person response body.
type Person struct {
	FullName string `json:"fullName"`
	Country  string `json:"country"`
}

// Login is the /random-login response body.
type Login struct {
	Username       string `json:"username"`
	RegisteredDate string `json:"registeredDate"`
	Summary        string `json:"summary"`
}

// Address is the /random-address response body. Postcode is a string or a
// number, exactly as the provider sent it.
type Address struct {
	City     string `json:"city"`
	Postcode any    `json:"postcode"`
}

// User is the POST /users response body.
type User struct {
	Name  string  `json:"name"`
	Age   float64 `json:"age"`
	Email string  `json:"email"`
}

// FullName joins first and last with a single space.
func FullName(first, last string) string {
	return first + " " + last
}

// DatePortion returns the characters of an ISO-8601 timestamp preceding the
// first "T". No timezone conversion happens; a value without a "T" is
// returned unchanged.
func DatePortion(timestamp string) string {
	date, _, _ := strings.Cut(timestamp, "T")
	return date
}

// LoginSummary renders "<username> (registered on <date>)".
func LoginSummary(username, date string) string {
	return fmt.Sprintf("%s (registered on %s)", username, date)
}

// ToPerson projects a validated person record.
func ToPerson(r Record) Person {
	return Person{
		FullName: FullName(str(r, "name", "first"), str(r, "name", "last")),
		Country:  str(r, "location", "country"),
	}
}

// ToLogin projects a validated login record.
func ToLogin(r Record) Login {
	username := str(r, "login", "username")
	date := DatePortion(str(r, "registered", "date"))
	return Login{
		Username:       username,
		RegisteredDate: date,
		Summary:        LoginSummary(username, date),
	}
}

// ToAddress projects a validated address record.
func ToAddress(r Record) Address {
	return Address{
		City:     str(r, "location", "city"),
		Postcode: lookup(r, "location", "postcode"),
	}
}

// ToUser projects a validated POST /users body.
func ToUser(r Record) User {
	return User{
		Name:  str(r, "name"),
		Age:   num(r, "age"),
		Email: str(r, "email"),
	}
}

// lookup walks nested objects along keys.
func lookup(r Record, keys ...string) any {
	var cur any = r
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[k]
	}
	return cur
}

func str(r Record, keys ...string) string {
	s, _ := lookup(r, keys...).(string)
	return s
}

func num(r Record, keys ...string) float64 {
	switch n := lookup(r, keys...).(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
