package sync

import (
	stdsync "sync"
	"time"
)

// Debouncer adalah timer tunda yang bisa di-restart: trigger baru
// membatalkan timer yang masih menunggu, jadi paling banyak satu aksi
// tertunda pada satu waktu dan edit terakhir yang menang. Timer yang
// dibatalkan tidak pernah jalan (at-most-once, bukan at-least-once).
type Debouncer struct {
	mu    stdsync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger menjadwalkan fn setelah delay, membatalkan jadwal sebelumnya.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop membatalkan aksi tertunda, bila ada.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
