package entities

type Course struct {
	Id               uint
	Title            string
	Slug             string
	BitrixCategoryId int
}
