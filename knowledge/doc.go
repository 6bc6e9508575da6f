/*
Package knowledge gives access to a knowledge base able to deduce, from partial minesweeper evidence,
which cells of a grid are certainly safe and which ones are certainly mines.

The knowledge base never guesses: a cell is only declared safe or mine if this is a logical consequence
of the evidence it was given.

Describing evidence

Each time the game reveals a safe cell, it tells the agent how many of the (up to 8) neighbours
of that cell are mines:

    a, err := knowledge.New(3, 3)
    if err != nil {
        return err
    }
    if err := a.IntegrateEvidence(knowledge.Cell{Row: 0, Col: 0}, 0); err != nil {
        return err
    }

The evidence is stored as a Sentence, i.e a set of cells associated with the exact number of mines
among them. Here, the sentence {(0,1), (1,0), (1,1)} = 0 is built, so the three cells are marked safe.

Inference

After each piece of evidence, the agent runs the following loop until nothing changes anymore:

    1. every sentence whose count is 0 gives safe cells, every sentence whose count equals
       its number of cells gives mines;
    2. those cells are removed from every sentence containing them;
    3. empty and duplicate sentences are removed;
    4. if the cells of a sentence A are a subset of the cells of a sentence B,
       the sentence (B - A) = B.count - A.count is added to the knowledge base.

Choosing a move

MakeSafeMove returns a cell known to be safe that was not played yet, if any.
When none is available, MakeRandomMove returns a cell that was neither played nor known to be a mine.
Both return false as their second value when no such cell exists:

    c, ok := a.MakeSafeMove()
    if !ok {
        c, ok = a.MakeRandomMove()
    }

An Agent is not safe for concurrent use.
*/
package knowledge
