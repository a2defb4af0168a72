package api

import (
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"
)

func TestSerialize(t *testing.T) {

	biff.Alternative("Serialize", func(a *biff.A) {

		s := newTestStore(t)
		serverLogs := &syncBuffer{}

		b := Build(s, "test")
		b.WithInterceptors(PrettyErrorInterceptor)
		b.Resource("/unencodable").WithActions(box.Get(func() any {
			return make(chan int)
		}).WithName("unencodable"))

		server := httptest.NewUnstartedServer(b)
		server.Config.ErrorLog = log.New(serverLogs, "", 0)
		server.Start()
		t.Cleanup(server.Close)

		api := apitest.NewWithBase(server.URL)

		a.Alternative("Every status is written once", func(a *biff.A) {
			resp := api.Request("POST", "/todos").
				WithBodyJson(map[string]interface{}{"done": false, "val": "x"}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyString(), "1\n")

			resp = api.Request("GET", "/todos/1").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			resp = api.Request("PUT", "/todos/1").
				WithBodyJson(map[string]interface{}{"done": true, "val": "y"}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			resp = api.Request("GET", "/todos").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			resp = api.Request("DELETE", "/todos/1").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyString(), "")

			resp = api.Request("DELETE", "/todos/1").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)

			biff.AssertEqual(serverLogs.String(), "")
		})

		a.Alternative("Encoding failure is an internal error", func(a *biff.A) {
			resp := api.Request("GET", "/unencodable").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusInternalServerError)
			pretty := resp.BodyJsonMap()["error"].(map[string]interface{})
			biff.AssertEqual(pretty["description"], "Unexpected error")
			biff.AssertTrue(strings.HasPrefix(pretty["message"].(string), "encode response: "))
			biff.AssertEqual(serverLogs.String(), "")
		})

	})
}
