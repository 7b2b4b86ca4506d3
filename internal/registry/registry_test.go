package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-rocket/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type describedGame struct {
	stubGame
}

func (g *describedGame) Description() string { return "has a description" }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", title: "Stub"} })
	Register("zz_described", func() Game {
		return &describedGame{stubGame{id: "zz_described", title: "Described"}}
	})

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}
	if Exists("zz_missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q, expected Stub", g.Title())
	}

	if _, err := Create("zz_missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create of unknown game: err = %v, expected ErrUnknownGame", err)
	}

	var found bool
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID > info.ID {
			t.Error("List() should be sorted by ID")
		}
		if info.ID == "zz_described" {
			found = true
			if info.Description != "has a description" {
				t.Errorf("Description = %q", info.Description)
			}
		}
	}
	if !found {
		t.Error("List() is missing zz_described")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestRegisterEmptyIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register with an empty id should panic")
		}
	}()
	Register(" ", func() Game { return &stubGame{} })
}
