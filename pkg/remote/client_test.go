package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/a2a-bridge/pkg/jsonrpc"
)

func TestSendMessage(t *testing.T) {
	Convey("Given a remote agent client", t, func() {
		var (
			captured   jsonrpc.Request
			authHeader string
		)

		respond := func(body string) *httptest.Server {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				authHeader = r.Header.Get("Authorization")
				json.NewDecoder(r.Body).Decode(&captured)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			}))
			Reset(server.Close)
			return server
		}

		Convey("When the agent answers with a task carrying artifacts", func() {
			server := respond(`{"jsonrpc":"2.0","id":1,"result":{
				"kind":"task","id":"t1",
				"artifacts":[{"artifactId":"a1","parts":[{"kind":"text","text":"x"}]}]
			}}`)

			text, err := NewClient(server.URL, "tok").SendMessage(context.Background(), "hello")

			So(err, ShouldBeNil)
			So(text, ShouldEqual, "x")

			Convey("Then the request is a well-formed message/send call", func() {
				So(captured.JSONRPC, ShouldEqual, "2.0")
				So(captured.Method, ShouldEqual, "message/send")
				So(authHeader, ShouldEqual, "Bearer tok")

				var params struct {
					Message struct {
						Kind      string `json:"kind"`
						MessageID string `json:"messageId"`
						Role      string `json:"role"`
						Parts     []struct {
							Kind string `json:"kind"`
							Text string `json:"text"`
						} `json:"parts"`
					} `json:"message"`
				}

				So(json.Unmarshal(captured.Params, &params), ShouldBeNil)
				So(params.Message.Kind, ShouldEqual, "message")
				So(params.Message.MessageID, ShouldNotBeEmpty)
				So(params.Message.Role, ShouldEqual, "user")
				So(len(params.Message.Parts), ShouldEqual, 1)
				So(params.Message.Parts[0].Kind, ShouldEqual, "text")
				So(params.Message.Parts[0].Text, ShouldEqual, "hello")
			})
		})

		Convey("When no token is configured", func() {
			server := respond(`{"jsonrpc":"2.0","id":1,"result":{"kind":"task","id":"t1"}}`)

			_, err := NewClient(server.URL, "").SendMessage(context.Background(), "hello")

			So(err, ShouldBeNil)
			So(authHeader, ShouldBeEmpty)
		})

		Convey("When the agent answers with a bare message", func() {
			server := respond(`{"jsonrpc":"2.0","id":1,"result":{
				"kind":"message","role":"agent",
				"parts":[{"kind":"text","text":"y"}]
			}}`)

			text, err := NewClient(server.URL, "").SendMessage(context.Background(), "hello")

			So(err, ShouldBeNil)
			So(text, ShouldEqual, "y")
		})

		Convey("When the agent answers with an error envelope", func() {
			server := respond(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid params: empty message text"}}`)

			_, err := NewClient(server.URL, "").SendMessage(context.Background(), "hello")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "remote agent error -32602")
			So(err.Error(), ShouldContainSubstring, "empty message text")
		})

		Convey("When the result is missing", func() {
			server := respond(`{"jsonrpc":"2.0","id":1}`)

			text, err := NewClient(server.URL, "").SendMessage(context.Background(), "hello")

			So(err, ShouldBeNil)
			So(text, ShouldEqual, "No result returned.")
		})

		Convey("When the agent returns a non-success status", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("down for maintenance"))
			}))
			Reset(server.Close)

			_, err := NewClient(server.URL, "").SendMessage(context.Background(), "hello")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "502")
			So(err.Error(), ShouldContainSubstring, "down for maintenance")
		})

		Convey("When the agent is unreachable", func() {
			_, err := NewClient("http://127.0.0.1:1/rpc", "").SendMessage(context.Background(), "hello")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "remote call failed")
		})
	})
}
