package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"dicegrid/communication"
	"dicegrid/game"
	"dicegrid/gamemaster"
)

// ClientCommunicator implements communication.Communicator against a remote server.
// Engine errors come back as errors matching the gamemaster sentinels.
type ClientCommunicator struct {
	serverURL string
	http      *http.Client
}

var _ communication.Communicator = (*ClientCommunicator)(nil)

// NewClientCommunicator initializes and returns a new ClientCommunicator. A nil
// client means http.DefaultClient.
func NewClientCommunicator(serverURL string, httpClient *http.Client) *ClientCommunicator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ClientCommunicator{
		serverURL: strings.TrimRight(serverURL, "/"),
		http:      httpClient,
	}
}

func (cc *ClientCommunicator) StartRound(ctx context.Context) (gamemaster.RoundStart, error) {
	var start gamemaster.RoundStart
	err := cc.do(ctx, http.MethodPost, "/rounds", nil, &start)
	return start, err
}

func (cc *ClientCommunicator) State(ctx context.Context) (*game.GameState, error) {
	var gs game.GameState
	if err := cc.do(ctx, http.MethodGet, "/state", nil, &gs); err != nil {
		return nil, err
	}
	return &gs, nil
}

func (cc *ClientCommunicator) Draw(ctx context.Context, player game.PlayerID, die game.Die) (game.Hand, error) {
	var resp communication.DrawResponse
	req := communication.DrawRequest{PlayerID: player, Die: die}
	if err := cc.do(ctx, http.MethodPost, "/draw", req, &resp); err != nil {
		return nil, err
	}
	return resp.Hand, nil
}

func (cc *ClientCommunicator) Place(ctx context.Context, player game.PlayerID, die game.Die, pos game.Position) (gamemaster.Placement, error) {
	var placement gamemaster.Placement
	req := communication.PlaceRequest{PlayerID: player, Die: die, Position: pos}
	err := cc.do(ctx, http.MethodPost, "/place", req, &placement)
	return placement, err
}

func (cc *ClientCommunicator) Finalize(ctx context.Context) (gamemaster.Result, error) {
	var res gamemaster.Result
	err := cc.do(ctx, http.MethodGet, "/finalize", nil, &res)
	return res, err
}

func (cc *ClientCommunicator) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, cc.serverURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := cc.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e communication.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Code == "" {
			return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
		}
		return e.ToError()
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
