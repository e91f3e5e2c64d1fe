package graph

import (
	"github.com/graphql-go/graphql"
)

// stringArg reads a string from a GraphQL input object, tolerating absence.
func stringArg(input map[string]interface{}, key string) string {
	if v, ok := input[key].(string); ok {
		return v
	}
	return ""
}

func (r *Resolver) createUser(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["userInput"].(map[string]interface{})
	return r.users.Register(p.Context,
		stringArg(input, "email"),
		stringArg(input, "name"),
		stringArg(input, "password"),
	)
}

func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	token, userID, err := r.users.Login(p.Context,
		p.Args["email"].(string),
		p.Args["password"].(string),
	)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"token": token, "userId": userID}, nil
}

func (r *Resolver) createPost(p graphql.ResolveParams) (interface{}, error) {
	ident, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}
	input, _ := p.Args["postInput"].(map[string]interface{})
	return r.posts.Create(p.Context, ident.UserID,
		stringArg(input, "title"),
		stringArg(input, "content"),
		stringArg(input, "imageUrl"),
	)
}

func (r *Resolver) listPosts(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAuth(p.Context); err != nil {
		return nil, err
	}
	page, _ := p.Args["page"].(int)
	posts, total, err := r.posts.List(p.Context, page)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"posts": posts, "totalPosts": total}, nil
}

func (r *Resolver) getPost(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAuth(p.Context); err != nil {
		return nil, err
	}
	return r.posts.Get(p.Context, p.Args["id"].(string))
}

func (r *Resolver) updatePost(p graphql.ResolveParams) (interface{}, error) {
	ident, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}
	input, _ := p.Args["postInput"].(map[string]interface{})
	imageURL := "undefined"
	if v, ok := input["imageUrl"].(string); ok {
		imageURL = v
	}
	return r.posts.Update(p.Context, ident.UserID,
		p.Args["id"].(string),
		stringArg(input, "title"),
		stringArg(input, "content"),
		imageURL,
	)
}

func (r *Resolver) deletePost(p graphql.ResolveParams) (interface{}, error) {
	ident, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}
	if err := r.posts.Delete(p.Context, ident.UserID, p.Args["id"].(string)); err != nil {
		return nil, err
	}
	return true, nil
}
