// bridge-sim stands in for a depth sensor: it connects to the game's bridge socket and
// streams a foot that follows the ball, kicking when it comes down
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/protocol"
	"github.com/lixenwraith/kickball/tracking"
)

func main() {
	wsURL := flag.String("url", "ws://"+parameter.DefaultListenAddr+"/ws", "Game bridge socket")
	hz := flag.Int("hz", 30, "Frames per second")
	miss := flag.Float64("miss", 0.1, "Chance per rally of letting the ball drop")
	flag.Parse()

	if *hz <= 0 {
		log.Fatalf("-hz must be positive")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *wsURL, *hz, *miss); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, wsURL string, hz int, miss float64) error {
	stateURL, err := stateURLFor(wsURL)
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return errors.Wrapf(err, "dial %s", wsURL)
	}
	defer conn.Close()
	log.Printf("connected to %s", wsURL)

	if err := send(conn, protocol.MsgHello, protocol.Hello{V: parameter.ProtocolVersion, Name: "bridge-sim"}); err != nil {
		return err
	}
	if err := send(conn, protocol.MsgDevice, protocol.DeviceStatus{Connected: true, Message: "sensor started"}); err != nil {
		return err
	}

	// Reader: logs tilt commands and keeps ping/pong flowing
	readErr := make(chan error, 1)
	go func() {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			env, err := protocol.DecodeEnvelope(msg)
			if err != nil {
				log.Printf("bad message: %v", err)
				continue
			}
			if env.T == protocol.MsgTilt {
				if cmd, err := protocol.DecodePayload[protocol.TiltCommand](env); err == nil {
					log.Printf("tilt motor -> %d°", cmd.Angle)
				}
			}
		}
	}()

	client := &http.Client{Timeout: time.Second}
	player := newPlayer(rand.New(rand.NewSource(time.Now().UnixNano())), miss)
	mapper := tracking.NewColorMapper()

	ticker := time.NewTicker(time.Second / time.Duration(hz))
	defer ticker.Stop()

	var frame int64
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
			return nil
		case err := <-readErr:
			return errors.Wrap(err, "read")
		case <-ticker.C:
		}

		st, err := fetchState(client, stateURL)
		if err != nil {
			log.Printf("state: %v", err)
			continue
		}
		if st.Phase != "playing" {
			player.rally = false
		}

		frame++
		foot := mapper.Unproject(player.footFor(st), footDepth)
		msg := protocol.SkeletonFrame{
			Frame: frame,
			Skeletons: []protocol.SkeletonData{{
				ID:    1,
				State: protocol.StateTracked,
				Joints: map[string]protocol.JointData{
					tracking.DefaultForwardFoot.String(): {X: foot.X, Y: foot.Y, Z: foot.Z},
				},
			}},
		}
		if err := send(conn, protocol.MsgSkeletons, msg); err != nil {
			return err
		}
	}
}

func send(conn *websocket.Conn, t string, payload any) error {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return errors.Wrapf(err, "send %s", t)
	}
	return nil
}

// stateURLFor derives http://host/state from ws://host/ws
func stateURLFor(wsURL string) (string, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return "", errors.Wrapf(err, "parse %s", wsURL)
	}
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	default:
		return "", errors.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/ws") + "/state"
	return u.String(), nil
}

func fetchState(client *http.Client, stateURL string) (protocol.State, error) {
	resp, err := client.Get(stateURL)
	if err != nil {
		return protocol.State{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return protocol.State{}, err
	}
	env, err := protocol.DecodeEnvelope(body)
	if err != nil {
		return protocol.State{}, err
	}
	return protocol.DecodePayload[protocol.State](env)
}
