package analytics

import (
	"fmt"
)

// Book is a well-known work used to put a word count in perspective.
type Book struct {
	Title  string
	Author string
	Words  int
}

// Books are the comparison candidates.
var Books = []Book{
	{Title: "Green Eggs and Ham", Author: "Dr. Seuss", Words: 750},
	{Title: "Gettysburg Address", Author: "Abraham Lincoln", Words: 270},
	{Title: "The Tell-Tale Heart", Author: "Edgar Allan Poe", Words: 2200},
	{Title: "The Yellow Wallpaper", Author: "Charlotte Perkins Gilman", Words: 6000},
	{Title: "A Scandal in Bohemia", Author: "Arthur Conan Doyle", Words: 7500},
	{Title: "The Lottery", Author: "Shirley Jackson", Words: 3400},
	{Title: "A Good Man is Hard to Find", Author: "Flannery O'Connor", Words: 6200},
	{Title: "Animal Farm", Author: "George Orwell", Words: 30000},
	{Title: "Of Mice and Men", Author: "John Steinbeck", Words: 29000},
	{Title: "Breakfast at Tiffany's", Author: "Truman Capote", Words: 26000},
	{Title: "The Old Man and the Sea", Author: "Ernest Hemingway", Words: 27000},
	{Title: "The Metamorphosis", Author: "Franz Kafka", Words: 21000},
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Words: 47000},
	{Title: "The Outsiders", Author: "S.E. Hinton", Words: 48500},
	{Title: "The Road Not Taken", Author: "Robert Frost", Words: 256},
	{Title: "The Raven", Author: "Edgar Allan Poe", Words: 1080},
	{Title: "Where the Sidewalk Ends", Author: "Shel Silverstein", Words: 110},
	{Title: "Fahrenheit 451", Author: "Ray Bradbury", Words: 46000},
	{Title: "Slaughterhouse-Five", Author: "Kurt Vonnegut", Words: 49500},
	{Title: "The Catcher in the Rye", Author: "J.D. Salinger", Words: 73000},
	{Title: "Lord of the Flies", Author: "William Golding", Words: 59900},
	{Title: "The Picture of Dorian Gray", Author: "Oscar Wilde", Words: 78000},
	{Title: "The Road", Author: "Cormac McCarthy", Words: 87000},
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", Words: 100000},
	{Title: "1984", Author: "George Orwell", Words: 88900},
	{Title: "Brave New World", Author: "Aldous Huxley", Words: 64000},
	{Title: "The Stranger", Author: "Albert Camus", Words: 36000},
	{Title: "The Alchemist", Author: "Paulo Coelho", Words: 39000},
	{Title: "Siddhartha", Author: "Hermann Hesse", Words: 41500},
	{Title: "Fight Club", Author: "Chuck Palahniuk", Words: 49000},
	{Title: "The Perks of Being a Wallflower", Author: "Stephen Chbosky", Words: 62000},
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Words: 95000},
	{Title: "Coraline", Author: "Neil Gaiman", Words: 30000},
	{Title: "The Giver", Author: "Lois Lowry", Words: 43000},
	{Title: "Harry Potter and the Philosopher's Stone", Author: "J.K. Rowling", Words: 77000},
	{Title: "Ender's Game", Author: "Orson Scott Card", Words: 100000},
	{Title: "The Hunger Games", Author: "Suzanne Collins", Words: 99750},
	{Title: "Twilight", Author: "Stephenie Meyer", Words: 118000},
	{Title: "Divergent", Author: "Veronica Roth", Words: 105000},
	{Title: "Ready Player One", Author: "Ernest Cline", Words: 136000},
	{Title: "The Maze Runner", Author: "James Dashner", Words: 101000},
	{Title: "The Da Vinci Code", Author: "Dan Brown", Words: 138000},
	{Title: "Gone Girl", Author: "Gillian Flynn", Words: 145000},
	{Title: "The Fault in Our Stars", Author: "John Green", Words: 67000},
	{Title: "American Psycho", Author: "Bret Easton Ellis", Words: 145000},
	{Title: "The Girl on the Train", Author: "Paula Hawkins", Words: 107000},
	{Title: "The Shining", Author: "Stephen King", Words: 160000},
	{Title: "Jurassic Park", Author: "Michael Crichton", Words: 120000},
	{Title: "A Game of Thrones", Author: "George R.R. Martin", Words: 298000},
	{Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", Words: 187000},
	{Title: "The Two Towers", Author: "J.R.R. Tolkien", Words: 156000},
	{Title: "The Return of the King", Author: "J.R.R. Tolkien", Words: 137000},
	{Title: "The Martian", Author: "Andy Weir", Words: 100000},
	{Title: "IT", Author: "Stephen King", Words: 445000},
	{Title: "A Clash of Kings", Author: "George R.R. Martin", Words: 326000},
	{Title: "A Storm of Swords", Author: "George R.R. Martin", Words: 414000},
	{Title: "The Winds of Winter", Author: "George R.R. Martin", Words: 600000},
	{Title: "Don Quixote", Author: "Miguel de Cervantes", Words: 430000},
	{Title: "Moby-Dick", Author: "Herman Melville", Words: 206000},
	{Title: "War and Peace", Author: "Leo Tolstoy", Words: 587000},
	{Title: "Les Misérables", Author: "Victor Hugo", Words: 655000},
	{Title: "The Count of Monte Cristo", Author: "Alexandre Dumas", Words: 464000},
	{Title: "Ulysses", Author: "James Joyce", Words: 265000},
	{Title: "Gone with the Wind", Author: "Margaret Mitchell", Words: 418000},
	{Title: "Infinite Jest", Author: "David Foster Wallace", Words: 543000},
	{Title: "The Stand", Author: "Stephen King", Words: 472000},
	{Title: "Atlas Shrugged", Author: "Ayn Rand", Words: 645000},
	{Title: "Middlemarch", Author: "George Eliot", Words: 316000},
	{Title: "Gravity's Rainbow", Author: "Thomas Pynchon", Words: 280000},
	{Title: "The Brothers Karamazov", Author: "Fyodor Dostoevsky", Words: 365000},
	{Title: "David Copperfield", Author: "Charles Dickens", Words: 360000},
	{Title: "Bleak House", Author: "Charles Dickens", Words: 360000},
	{Title: "A Tale of Two Cities", Author: "Charles Dickens", Words: 135000},
	{Title: "Anna Karenina", Author: "Leo Tolstoy", Words: 350000},
	{Title: "Crime and Punishment", Author: "Fyodor Dostoevsky", Words: 211000},
	{Title: "The Grapes of Wrath", Author: "John Steinbeck", Words: 169000},
	{Title: "The Hunchback of Notre-Dame", Author: "Victor Hugo", Words: 195000},
	{Title: "The Odyssey", Author: "Homer", Words: 121000},
	{Title: "Pride and Prejudice", Author: "Jane Austen", Words: 122000},
	{Title: "Frankenstein", Author: "Mary Shelley", Words: 74000},
	{Title: "Jane Eyre", Author: "Charlotte Brontë", Words: 183000},
	{Title: "Wuthering Heights", Author: "Emily Brontë", Words: 107000},
	{Title: "Emma", Author: "Jane Austen", Words: 160000},
	{Title: "Sense and Sensibility", Author: "Jane Austen", Words: 119000},
	{Title: "Dracula", Author: "Bram Stoker", Words: 160000},
	{Title: "The Time Machine", Author: "H.G. Wells", Words: 32000},
	{Title: "The War of the Worlds", Author: "H.G. Wells", Words: 60000},
	{Title: "Heart of Darkness", Author: "Joseph Conrad", Words: 38000},
	{Title: "Dune", Author: "Frank Herbert", Words: 188000},
	{Title: "The Call of the Wild", Author: "Jack London", Words: 47000},
	{Title: "The Bell Jar", Author: "Sylvia Plath", Words: 70000},
	{Title: "The Scarlet Letter", Author: "Nathaniel Hawthorne", Words: 63000},
	{Title: "The Handmaid's Tale", Author: "Margaret Atwood", Words: 90000},
	{Title: "Rebecca", Author: "Daphne du Maurier", Words: 118000},
	{Title: "Dr. Jekyll and Mr. Hyde", Author: "Robert Louis Stevenson", Words: 60000},
	{Title: "A Clockwork Orange", Author: "Anthony Burgess", Words: 60000},
	{Title: "The Hitchhiker's Guide to the Galaxy", Author: "Douglas Adams", Words: 46000},
	{Title: "One Hundred Years of Solitude", Author: "Gabriel García Márquez", Words: 144000},
	{Title: "The Sound and the Fury", Author: "William Faulkner", Words: 110000},
	{Title: "Beloved", Author: "Toni Morrison", Words: 111000},
	{Title: "The Godfather", Author: "Mario Puzo", Words: 139000},
	{Title: "The Book Thief", Author: "Markus Zusak", Words: 118000},
}

// ClosestBook returns the book whose word count is nearest totalWords.
func ClosestBook(totalWords int) Book {
	best := Books[0]
	for _, b := range Books[1:] {
		if abs(b.Words-totalWords) < abs(best.Words-totalWords) {
			best = b
		}
	}
	return best
}

// Comparison describes totalWords relative to the closest well-known book.
func Comparison(totalWords int) string {
	if totalWords < 100 {
		return "You're on your way to becoming a writer! Keep going, every word counts!"
	}
	b := ClosestBook(totalWords)
	diff := abs(b.Words - totalWords)
	if diff < 100 {
		return fmt.Sprintf("Amazing! You've written about the same number of words as '%s' by %s (%d words)!", b.Title, b.Author, b.Words)
	}
	moreOrFewer := "fewer"
	if totalWords > b.Words {
		moreOrFewer = "more"
	}
	return fmt.Sprintf("You've written %d words %s than '%s' by %s (%d words). Keep writing!", diff, moreOrFewer, b.Title, b.Author, b.Words)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
