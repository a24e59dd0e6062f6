package app

import "github.com/pboachie/pi-lotto/internal/infrastructure/lock"

func (a *application) InitUserLockManager() *lock.UserLockManager {
	return lock.NewUserLockManager()
}
