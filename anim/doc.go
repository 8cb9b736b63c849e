// Package anim advances cel animations of on-screen sprites.
//
// A Sprite owns a horizontal strip of cels, a per-cel duration list and a
// loop mode. The Scheduler groups sprites by layer and drives them with a
// two-phase protocol:
//
//	wait := sched.AdvanceAll()   // advance due sprites, get ticks until next change
//	sleep(wait)
//	sched.ChargeElapsed(wait)    // charge the time actually slept
//
// AdvanceAll reports every sprite whose cel changed through the RedrawFunc
// with the sprite's screen rectangle, so the host only recomposes that area.
package anim
