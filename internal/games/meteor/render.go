package meteor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/meteorfall/internal/config"
	"github.com/vovakirdan/meteorfall/internal/core"
)

// Renderer draws a game state using only the four Surface primitives.
type Renderer struct {
	title string
	life  core.Image
}

// NewRenderer creates a renderer. life is the icon drawn once per remaining life.
func NewRenderer(title string, life core.Image) *Renderer {
	return &Renderer{title: title, life: life}
}

// Draw clears the field and draws every live entity, the HUD and any message.
func (r *Renderer) Draw(dst *core.Screen, st *State, rules config.Gameplay) {
	r.DrawTo(dst, dst.Bounds(), st, rules)
}

// DrawTo draws into an arbitrary surface covering field.
func (r *Renderer) DrawTo(dst core.Surface, field core.Rect, st *State, rules config.Gameplay) {
	dst.ClearRect(field)

	for _, a := range st.Live {
		a.Draw(dst)
	}

	r.drawHUD(dst, field, st, rules)

	switch {
	case st.Phase != PhaseRunning:
		r.drawMessage(dst, field, st.Message, messageColor(st))
	case st.Paused:
		r.drawMessage(dst, field, MessagePaused, core.ColorYellow)
	}
}

func (r *Renderer) drawHUD(dst core.Surface, field core.Rect, st *State, rules config.Gameplay) {
	dst.DrawText(field.X+1, field.Y, r.title, core.ColorGray)

	if rules.Target > 0 {
		progress := fmt.Sprintf("Meteors: %d/%d", st.Spawned, rules.Target)
		dst.DrawText(field.Right()-textWidth(progress)-1, field.Y, progress, core.ColorGray)
	}

	score := fmt.Sprintf("Score: %d", st.Score)
	scoreY := field.Bottom() - 1
	dst.DrawText(field.Right()-textWidth(score)-1, scoreY, score, core.ColorRed)

	if !rules.TrackLives || r.life == nil {
		return
	}
	w, h := r.life.Size()
	y := scoreY - h
	x := field.Right() - st.Lives*(w+1) - 1
	for i := 0; i < st.Lives; i++ {
		dst.DrawImage(r.life, core.NewRect(x+i*(w+1), y, w, h))
	}
}

// drawMessage draws a bordered box with text centered on the field.
func (r *Renderer) drawMessage(dst core.Surface, field core.Rect, text string, c core.Color) {
	if text == "" {
		return
	}
	tw := textWidth(text)
	boxW := core.Min(tw+4, field.W)
	boxH := 3
	box := core.NewRect(field.X+(field.W-boxW)/2, field.Y+(field.H-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	edge := strings.Repeat("─", core.Max(0, boxW-2))
	dst.DrawText(box.X, box.Y, "┌"+edge+"┐", c)
	dst.DrawText(box.X, box.Bottom()-1, "└"+edge+"┘", c)
	dst.DrawText(box.X, box.Y+1, "│", c)
	dst.DrawText(box.Right()-1, box.Y+1, "│", c)
	dst.DrawText(box.X+(boxW-tw)/2, box.Y+1, text, c)
}

func messageColor(st *State) core.Color {
	switch {
	case st.Phase == PhaseNotStarted:
		return core.ColorBlue
	case st.Won:
		return core.ColorGreen
	default:
		return core.ColorRed
	}
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}
