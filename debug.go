package sprig

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameStats holds per-frame batching metrics.
type FrameStats struct {
	Requests       int // sprites queued
	Culled         int // items skipped because they lie outside the target
	Dropped        int // sprites skipped: texture not ready, upload failed or shader missing
	Flushes        int // flushes that reached the GPU
	Aborted        int // flushes abandoned because the context was lost
	Groups         int // batch groups drawn
	DrawCalls      int
	ShaderSwitches int
	BlendSwitches  int

	SubmitTime time.Duration // Drawable traversal plus Render calls
	FlushTime  time.Duration // final Stop
}

// debugLog writes frame stats at debug level, along with the frame rate
// Ebitengine measures.
func debugLog(stats FrameStats) {
	Logger().Debug("sprig: frame",
		"fps", ebiten.ActualFPS(),
		"requests", stats.Requests,
		"culled", stats.Culled,
		"dropped", stats.Dropped,
		"flushes", stats.Flushes,
		"aborted", stats.Aborted,
		"groups", stats.Groups,
		"drawCalls", stats.DrawCalls,
		"shaderSwitches", stats.ShaderSwitches,
		"blendSwitches", stats.BlendSwitches,
		"submit", stats.SubmitTime,
		"flush", stats.FlushTime,
		"total", stats.SubmitTime+stats.FlushTime)
}
