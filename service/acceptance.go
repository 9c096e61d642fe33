package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// SampleFile is the backing file content Acceptance expects to be served.
const SampleFile = `ID,Name,Sex,Age,Math,Chinese,English
1,Alice,F,20,88.5,91.0,76.0
2,Bob,M,21,59.0,60.0,62.0
bad,line,here
3,Carol,F,19,95.0,89.0,90.0
`

var (
	alice = JSON{"id": 1, "name": "Alice", "sex": "F", "age": 20, "math": 88.5, "chinese": 91, "english": 76}
	bob   = JSON{"id": 2, "name": "Bob", "sex": "M", "age": 21, "math": 59, "chinese": 60, "english": 62}
	carol = JSON{"id": 3, "name": "Carol", "sex": "F", "age": 19, "math": 95, "chinese": 89, "english": 90}
)

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List students", func(a *biff.A) {
		resp := apiRequest("GET", "/students").Do()
		Save(resp, "List students", `
			Every well formed line of the backing file, in file order. Malformed
			lines are skipped and reported in the server log.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{alice, bob, carol})
	})

	a.Alternative("List students sorted", func(a *biff.A) {
		resp := apiRequest("GET", "/students").
			WithQuery("sort", "math").
			WithQuery("reverse", "true").
			Do()
		Save(resp, "List students sorted", `
			Optional ´sort´ takes any numeric field: id, age, math, chinese, english.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{carol, alice, bob})
	})

	a.Alternative("List students sorted by unknown field", func(a *biff.A) {
		resp := apiRequest("GET", "/students").
			WithQuery("sort", "name").
			Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Find by math range", func(a *biff.A) {
		resp := apiRequest("POST", "/students:find").
			WithBodyJson(JSON{
				"field": "math",
				"from":  60,
				"to":    100,
			}).Do()
		Save(resp, "Find by range", `
			Both bounds are inclusive. An empty result is not an error.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{alice, carol})

		a.Alternative("Inclusive bounds", func(a *biff.A) {
			resp := apiRequest("POST", "/students:find").
				WithBodyJson(JSON{
					"field": "math",
					"from":  59,
					"to":    88.5,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{alice, bob})
		})

		a.Alternative("Inverted range", func(a *biff.A) {
			resp := apiRequest("POST", "/students:find").
				WithBodyJson(JSON{
					"from": 100,
					"to":   60,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{})
		})
	})

	a.Alternative("Find by age range", func(a *biff.A) {
		resp := apiRequest("POST", "/students:find").
			WithBodyJson(JSON{
				"field": "age",
				"from":  20,
				"to":    30,
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{alice, bob})
	})

	a.Alternative("Find by unknown field", func(a *biff.A) {
		resp := apiRequest("POST", "/students:find").
			WithBodyJson(JSON{
				"field": "name",
				"from":  0,
				"to":    1,
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Find without bounds", func(a *biff.A) {
		resp := apiRequest("POST", "/students:find").
			WithBodyJson(JSON{
				"field": "math",
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Match", func(a *biff.A) {
		resp := apiRequest("POST", "/students:match").
			WithBodyJson(JSON{
				"filter": JSON{"sex": "F"},
			}).Do()
		Save(resp, "Match", `
			Filter with mongo style operators over the JSON form of each student.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{alice, carol})

		a.Alternative("Limit", func(a *biff.A) {
			resp := apiRequest("POST", "/students:match").
				WithBodyJson(JSON{
					"filter": JSON{"sex": "F"},
					"limit":  1,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{alice})
		})
	})

	a.Alternative("Stats", func(a *biff.A) {
		resp := apiRequest("GET", "/stats").Do()
		Save(resp, "Stats", `
			Aggregates computed from a fresh load of the backing file.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJsonMap()
		summary := body["summary"].(map[string]interface{})
		biff.AssertEqualJson(summary["count"], 3)
		biff.AssertEqualJson(summary["fields"].(map[string]interface{})["age"], JSON{
			"min":  19,
			"max":  21,
			"mean": 20,
		})
		disk := body["disk"].(map[string]interface{})
		biff.AssertEqualJson(disk["size"], len(SampleFile))
	})
}
