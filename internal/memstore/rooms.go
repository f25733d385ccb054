package memstore

import (
	"context"
	"sort"

	"fitclub/internal/room"
)

type roomRepo struct {
	s *Store
}

func (r roomRepo) CreateRoom(ctx context.Context, name string, capacity int) (*room.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.rooms {
		if existing.Name == name {
			return nil, room.ErrRoomNameTaken
		}
	}

	r.s.nextID["rooms"]++
	created := room.Room{
		ID:        r.s.nextID["rooms"],
		Name:      name,
		Capacity:  capacity,
		CreatedAt: r.s.timestamp(),
	}
	r.s.rooms[created.ID] = created

	return &created, nil
}

func (r roomRepo) GetAllRooms(ctx context.Context) ([]room.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rooms := make([]room.Room, 0, len(r.s.rooms))
	for _, rm := range r.s.rooms {
		rooms = append(rooms, rm)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	return rooms, nil
}

func (r roomRepo) GetRoomByID(ctx context.Context, id int) (*room.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rm, ok := r.s.rooms[id]
	if !ok {
		return nil, room.ErrRoomNotFound
	}
	return &rm, nil
}
