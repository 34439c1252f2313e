package assistant

// AlwaysOnline is the default connectivity probe for the server deployment:
// if the process can serve the request, the network is there. Tests swap in
// a fake to drive the offline path.
type AlwaysOnline struct{}

func (AlwaysOnline) Online() bool { return true }
