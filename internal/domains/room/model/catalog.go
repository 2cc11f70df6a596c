package model

import "fmt"

// Category is a room group identified by name and type with every label it owns.
type Category struct {
	RoomName    string   `json:"room_name"`
	RoomType    string   `json:"room_type"`
	RoomNumbers []string `json:"room_numbers"`
}

func CategoryKey(roomName, roomType string) string {
	return fmt.Sprintf("%s\x00%s", roomName, roomType)
}

func (c Category) Key() string {
	return CategoryKey(c.RoomName, c.RoomType)
}

// MergeCatalog folds rows sharing (room_name, room_type) into one category.
// Categories keep the position of their first row and labels keep row order.
func MergeCatalog(rooms []Room) []Category {
	catalog := []Category{}
	index := map[string]int{}

	for _, room := range rooms {
		key := CategoryKey(room.RoomName, room.RoomType)

		pos, ok := index[key]
		if !ok {
			index[key] = len(catalog)
			catalog = append(catalog, Category{
				RoomName:    room.RoomName,
				RoomType:    room.RoomType,
				RoomNumbers: append([]string{}, room.RoomNumber...),
			})

			continue
		}

		catalog[pos].RoomNumbers = append(catalog[pos].RoomNumbers, room.RoomNumber...)
	}

	return catalog
}

// FindCategory returns the category with the given key, if present.
func FindCategory(catalog []Category, roomName, roomType string) (Category, bool) {
	key := CategoryKey(roomName, roomType)

	for _, category := range catalog {
		if category.Key() == key {
			return category, true
		}
	}

	return Category{}, false
}

// LabelOwners maps every label in the catalog to the key of its category.
func LabelOwners(catalog []Category) map[string]string {
	owners := map[string]string{}

	for _, category := range catalog {
		for _, label := range category.RoomNumbers {
			owners[label] = category.Key()
		}
	}

	return owners
}
