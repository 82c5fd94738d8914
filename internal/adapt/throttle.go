// internal/adapt/throttle.go
package adapt

import (
	"context"
	"sync"
	"time"
)

// Pacer は連続する生成コールの間に固定間隔を挟む協調的スロットルです。
// レート制限への配慮であってキューやバックプレッシャではない。
// 遅延戦略を差し替えられるよう、生成ロジックからは分離してある。
// 1つのインスタンスをスケジューラと管理APIのゴルーチンが共有するため、
// Wait は複数ゴルーチンから同時に呼ばれても安全。
type Pacer struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait は前回のWaitからinterval経過するまでブロックします。初回は待たない。
// コンテキストがキャンセルされたらそのエラーを返す。
// ロックは待機中も保持する。間隔はプロセス全体で1本なので、
// 同時に呼んだゴルーチンは interval ずつずれて順番に通る。
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.interval <= 0 {
		p.last = time.Now()
		return nil
	}
	if !p.last.IsZero() {
		wait := p.interval - time.Since(p.last)
		if wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	p.last = time.Now()
	return nil
}
