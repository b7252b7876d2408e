package filesystem

import "errors"

var (
	// ErrCreateRoot возвращается, когда не удалось создать корневой каталог
	ErrCreateRoot = errors.New("filesystem.repository: failed to create root directory")

	// ErrRead возвращается при ошибке чтения файла коллекции
	ErrRead = errors.New("filesystem.repository: failed to read file")

	// ErrWrite возвращается при ошибке записи файла коллекции
	ErrWrite = errors.New("filesystem.repository: failed to write file")

	// ErrRemove возвращается при ошибке удаления файла коллекции
	ErrRemove = errors.New("filesystem.repository: failed to remove file")
)
