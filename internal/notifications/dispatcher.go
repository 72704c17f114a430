package notifications

import "log"

// Sink persiste un mensaje del panel; lo implementa Store.
type Sink interface {
	Log(message string) error
}

// Dispatcher escribe notificaciones del panel fuera del camino del request.
type Dispatcher struct {
	store Sink
	queue chan string
}

func NewDispatcher(store Sink) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan string, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.store.Log(msg); err != nil {
			log.Println("notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(message string) {
	select {
	case d.queue <- message:
	default:
		// cola llena → descartamos la notificación, nunca frenamos la API
		log.Println("notification queue full, dropping message")
	}
}
