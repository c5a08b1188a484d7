// Package format renders marque syntax trees back into canonical surface
// syntax, picking the most idiomatic spelling among equivalent forms.
//
// Назначение: канонический pretty-printer поверх уже разобранного AST.
// Не делает: парсинга, проверки семантики, раскладки или вывода в файлы.
// Зависимости: internal/ast, internal/rgb, internal/source.
package format
